package flatfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apppayroll "github.com/jhoicas/paystats/internal/application/payroll"
	"github.com/jhoicas/paystats/internal/domain"
	"github.com/jhoicas/paystats/internal/domain/entity"
	"github.com/jhoicas/paystats/pkg/config"
	"github.com/jhoicas/paystats/pkg/logger"
)

const maxLineBytes = 1 << 20

// Reader implementa payroll.EmployeeSource sobre un archivo local.
// Lee el archivo completo en memoria antes de parsear.
type Reader struct {
	path     string
	encoding string
	lenient  bool
	log      *logger.Logger
}

// NewReader construye el lector a partir de la configuración de entrada.
func NewReader(cfg config.InputConfig, log *logger.Logger) *Reader {
	if log == nil {
		log = logger.Nop()
	}
	return &Reader{
		path:     cfg.File,
		encoding: cfg.Encoding,
		lenient:  cfg.Lenient(),
		log:      log,
	}
}

// Load lee y clasifica todas las líneas del archivo.
func (r *Reader) Load(ctx context.Context) (*apppayroll.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", r.path, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("leer %s: %w", r.path, err)
	}

	data, err := decode(raw, r.encoding)
	if err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", r.path, err)
	}

	res, err := Parse(data, r.lenient, r.log)
	if err != nil {
		return nil, err
	}
	res.Summary.Source = r.path

	r.log.Info().
		Str("file", r.path).
		Int("lines", res.Summary.Lines).
		Int("loaded", res.Summary.Loaded).
		Int("skipped", res.Summary.Skipped).
		Msg("empleados cargados")
	return res, nil
}

// Parse clasifica cada línea no vacía de data, conservando el orden.
// En modo estricto devuelve el primer *ParseError; en modo lenient lo registra
// como warning y continúa.
func Parse(data []byte, lenient bool, log *logger.Logger) (*apppayroll.LoadResult, error) {
	if log == nil {
		log = logger.Nop()
	}
	res := &apppayroll.LoadResult{Employees: []entity.Employee{}}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		res.Summary.Lines++

		emp, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			if !lenient {
				return nil, err
			}
			res.Summary.Skipped++
			log.Warn().Int("line", lineNo).Err(err).Msg("línea descartada")
			continue
		}
		res.Employees = append(res.Employees, emp)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer líneas: %w", err)
	}

	res.Summary.Loaded = len(res.Employees)
	return res, nil
}

// decode convierte el contenido a UTF-8. En utf-8 descarta un BOM inicial.
func decode(raw []byte, enc string) ([]byte, error) {
	var dec *encoding.Decoder
	switch enc {
	case "", config.EncodingUTF8:
		dec = unicode.UTF8BOM.NewDecoder()
	case config.EncodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()
	case config.EncodingWindows1252:
		dec = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("%q: %w", enc, domain.ErrUnsupportedEncoding)
	}
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, err
	}
	return out, nil
}
