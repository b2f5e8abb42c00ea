package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/paystats/internal/domain"
)

// Modos de carga del archivo de empleados.
const (
	ModeStrict  = "strict"  // aborta en la primera línea inválida
	ModeLenient = "lenient" // descarta la línea y registra un warning
)

// Codificaciones de entrada soportadas.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde flags, env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Input  InputConfig
	Export ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	LogLevel string
}

// InputConfig archivo de empleados y política de carga.
type InputConfig struct {
	File     string // ruta relativa al directorio de trabajo
	Mode     string // strict | lenient
	Encoding string // utf-8 | latin1 | windows-1252
}

// ExportConfig destinos opcionales del reporte; vacío = no exportar.
type ExportConfig struct {
	PDFPath string
	CSVPath string
}

// flagKeys relaciona cada flag de la CLI con su variable de entorno.
var flagKeys = map[string]string{
	"file":      "PAYSTATS_FILE",
	"mode":      "PAYSTATS_MODE",
	"encoding":  "PAYSTATS_ENCODING",
	"pdf":       "PAYSTATS_PDF",
	"csv":       "PAYSTATS_CSV",
	"log-level": "LOG_LEVEL",
	"env":       "APP_ENV",
}

// RegisterFlags declara los flags opcionales sobre el FlagSet del comando.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("file", "employees.txt", "archivo de empleados")
	fs.String("mode", ModeStrict, "política ante líneas inválidas: strict | lenient")
	fs.String("encoding", EncodingUTF8, "codificación del archivo: utf-8 | latin1 | windows-1252")
	fs.String("pdf", "", "ruta del reporte PDF (opcional)")
	fs.String("csv", "", "ruta del registro de pagos CSV (opcional)")
	fs.String("log-level", "info", "nivel de log: trace, debug, info, warn, error")
	fs.String("env", "development", "entorno: development | production")
}

// Load lee la configuración. Prioridad: flag explícito > env var > archivo > default.
// fs puede ser nil (sólo env y archivo).
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (config.env en . o ./config)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Input: InputConfig{
			File:     getString(v, "PAYSTATS_FILE", "employees.txt"),
			Mode:     strings.ToLower(getString(v, "PAYSTATS_MODE", ModeStrict)),
			Encoding: strings.ToLower(getString(v, "PAYSTATS_ENCODING", EncodingUTF8)),
		},
		Export: ExportConfig{
			PDFPath: getString(v, "PAYSTATS_PDF", ""),
			CSVPath: getString(v, "PAYSTATS_CSV", ""),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza modos y codificaciones desconocidos.
func (c *Config) Validate() error {
	switch c.Input.Mode {
	case ModeStrict, ModeLenient:
	default:
		return fmt.Errorf("config: %q: %w", c.Input.Mode, domain.ErrInvalidLoadMode)
	}
	switch c.Input.Encoding {
	case EncodingUTF8, EncodingLatin1, EncodingWindows1252:
	default:
		return fmt.Errorf("config: %q: %w", c.Input.Encoding, domain.ErrUnsupportedEncoding)
	}
	if strings.TrimSpace(c.Input.File) == "" {
		return fmt.Errorf("config: PAYSTATS_FILE vacío")
	}
	return nil
}

// Lenient indica si las líneas inválidas se descartan en lugar de abortar.
func (c InputConfig) Lenient() bool {
	return c.Mode == ModeLenient
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}
