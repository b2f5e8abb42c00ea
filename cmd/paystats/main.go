// paystats lee employees.txt, clasifica a cada empleado por el prefijo de su ID
// y muestra el pago semanal promedio, los pagos extremos y la distribución por
// categoría.
//
// Uso: paystats [--file employees.txt] [--mode strict|lenient] [--pdf out.pdf] [--csv out.csv]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/paystats/internal/interfaces/cli"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "paystats: %v\n", err)
		os.Exit(1)
	}
}
