package domain

// Config mirrors ~/.shibu/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Registry            RegistrySettings  `yaml:"registry"`
	Model               ModelSettings     `yaml:"model"`
	Advisory            AdvisorySettings  `yaml:"advisory"`
	Narration           NarrationSettings `yaml:"narration"`
	Execution           ExecutionSettings `yaml:"execution"`
	History             HistorySettings   `yaml:"history"`
}

// RegistrySettings locates the action artifact directory and the interpreters
// used to launch script artifacts.
type RegistrySettings struct {
	Dir               string `yaml:"dir"`
	PythonInterpreter string `yaml:"python_interpreter"`
	ShellInterpreter  string `yaml:"shell_interpreter"`
}

// ModelSettings configures the optional local inference backend used by the
// approximate matcher. An empty endpoint disables model-backed matching.
type ModelSettings struct {
	Endpoint       string `yaml:"endpoint"`
	ModelID        string `yaml:"model_id"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// AdvisorySettings configures the remote feasibility classifier. The API key
// is read from the named environment variable, never stored in the file.
type AdvisorySettings struct {
	Endpoint       string `yaml:"endpoint"`
	ModelID        string `yaml:"model_id"`
	APIKeyEnvVar   string `yaml:"api_key_env_var"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// NarrationSettings controls the spoken status side channel.
type NarrationSettings struct {
	Enabled       bool   `yaml:"enabled"`
	SpeechProgram string `yaml:"speech_program"`
	QueueSize     int    `yaml:"queue_size"`
}

// ExecutionSettings controls how matched artifacts run.
type ExecutionSettings struct {
	Confirm        bool `yaml:"confirm_before_execute"`
	TimeoutSeconds int  `yaml:"timeout"`
}

// HistorySettings toggles resolution-run persistence.
type HistorySettings struct {
	Enabled       bool `yaml:"enabled"`
	RetentionDays int  `yaml:"retention_days"`
}
