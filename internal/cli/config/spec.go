package config

// Config is the root configuration for asyncstorage-cli.
type Config struct {
	Storage StorageSection `koanf:"storage"`
	Log     LogSection     `koanf:"log"`
	Metrics MetricsSection `koanf:"metrics"`
}

// StorageSection locates the AsyncStorage directory.
//
// Dir wins when set. Otherwise the directory is derived from BaseDir (or the
// platform application-support directory) and AppID.
type StorageSection struct {
	BaseDir string `koanf:"basedir"`
	AppID   string `koanf:"appid"`
	Dir     string `koanf:"dir"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsSection configures metrics output.
type MetricsSection struct {
	// Textfile is written in Prometheus text format after each command.
	Textfile string `koanf:"textfile"`
}
