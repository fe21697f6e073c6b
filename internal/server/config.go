package server

import (
	"time"
)

type Config struct {
	Port                 int           `yaml:"port"`
	AntidosBuckets       int           `yaml:"antidosBuckets"`
	AntidosPeriod        time.Duration `yaml:"antidosPeriod"`
	AntidosMaxConcurrent int           `yaml:"antidosMaxConcurrent"`
	AdminKey             string        `yaml:"adminKey"`
	ShutdownTimeout      time.Duration `yaml:"shutdownTimeout"`
	TLS                  TLSConfig     `yaml:"tls"`
}

// TLSConfig enables HTTPS when CertFile and KeyFile are set.
type TLSConfig struct {
	CertFile       string        `yaml:"certFile"`
	KeyFile        string        `yaml:"keyFile"`
	ReloadInterval time.Duration `yaml:"reloadInterval"`
}
