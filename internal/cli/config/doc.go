// Package config defines the asyncstorage-cli configuration structure.
//
// The configuration file defaults to <user config dir>/asyncstorage/config.yaml
// and is optional.
//
// Values are loaded by confloader from defaults, an optional YAML file,
// ASYNCSTORAGE_* environment variables and command-line flags.
//
// Example configuration:
//
//	storage:
//	  basedir: /home/me/Library/Application Support
//	  appid: com.example.app
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  textfile: /var/lib/node_exporter/asyncstorage.prom
package config
