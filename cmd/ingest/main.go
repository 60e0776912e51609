// ingest ejecuta el pipeline de carga sobre un archivo local, sin servidor ni base de datos.
//
// Uso: go run ./cmd/ingest <arquivo.csv> [dir-saida]
// Escribe {unidade}-{DD-MM-YYYY}.txt en dir-saida (por defecto el directorio actual).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhoicas/geocadastro-api/internal/application/ingestion"
	"github.com/jhoicas/geocadastro-api/pkg/config"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: ingest <arquivo.csv> [dir-saida]")
		os.Exit(1)
	}
	outDir := "."
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}
	if err := run(context.Background(), os.Args[1], outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, src, outDir string) error {
	// El CLI no necesita JWT ni base: solo Ingest y Log.
	os.Setenv("APP_ENV", envOr("APP_ENV", "development"))
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr})

	uc := ingestion.NewUseCase(ingestion.Config{
		TempDir:   cfg.Ingest.TempDir,
		Delimiter: cfg.Ingest.DelimiterRune(),
	}, nil, nil, log)

	res, err := uc.ProcessFile(ctx, src)
	if err != nil {
		return err
	}
	defer res.Cleanup()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("crear %s: %w", outDir, err)
	}
	dst := filepath.Join(outDir, res.Filename)
	if err := moveFile(res.Path, dst); err != nil {
		return err
	}

	fmt.Printf("%s\t%d registros (%d descartados, encoding %s)\n", dst, res.Count, res.TotalRejected(), res.Encoding)
	return nil
}

// moveFile intenta rename y copia si origen y destino están en dispositivos distintos.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("abrir artefacto: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("crear %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copiar artefacto: %w", err)
	}
	return out.Close()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
