package models

type Config struct {
	Processes    int    `json:"processes"`
	Frames       int    `json:"frames"`
	LogLevel     string `json:"log_level"`
	LogPath      string `json:"log_path"`
	AccessDelay  int    `json:"access_delay"` // milisegundos entre accesos
	Seed         int64  `json:"seed"`         // 0 toma la hora actual
	Steps        int    `json:"steps"`        // 0 corre hasta recibir una señal
	Port         int    `json:"port"`         // 0 deshabilita el servidor de inspección
	SwapFilePath string `json:"swap_file_path"`
	DumpPath     string `json:"dump_path"`
	HistorySize  int    `json:"history_size"`
}

const DefaultHistorySize = 64

// DefaultConfig devuelve la configuración con la que arranca el simulador si no se
// pasa archivo.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "INFO",
		AccessDelay: 1000,
		DumpPath:    "./dumps/",
		HistorySize: DefaultHistorySize,
	}
}

// Validate rechaza configuraciones con las que el simulador no puede arrancar.
func (c Config) Validate() error {
	if c.Processes <= 0 {
		return &ConfigurationError{Field: "processes", Value: c.Processes, Err: ErrInvalidProcessCount}
	}
	if c.Frames <= 0 || c.Frames > MaxFrames {
		return &ConfigurationError{Field: "frames", Value: c.Frames, Err: ErrInvalidFrameCount}
	}
	return nil
}

var SimulatorConfig *Config
