package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/config"
	infraLogger "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/logger"
)

func runScan(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	configPath := flags.String("config", "./config", "directory containing config.yaml")
	titlesPath := flags.StringP("titles", "t", "-", "file with one title per line, - for stdin")
	maxTitles := flags.IntP("max", "n", 0, "scan at most this many titles (default server.max_titles)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	eng, err := bootstrap(*configPath, infraLogger.Options{Console: os.Stderr})
	if err != nil {
		return err
	}
	defer eng.close()

	limit := *maxTitles
	if limit <= 0 {
		limit = eng.cfg.Server.MaxTitles
	}
	if limit > config.MaxTitlesLimit {
		return fmt.Errorf("--max must be at most %d", config.MaxTitlesLimit)
	}

	in := os.Stdin
	if *titlesPath != "-" {
		f, err := os.Open(filepath.Clean(*titlesPath))
		if err != nil {
			return fmt.Errorf("failed to open titles file: %w", err)
		}
		defer f.Close()
		in = f
	}

	titles, truncated, err := readTitles(in, limit)
	if err != nil {
		return err
	}
	if truncated {
		eng.logger.WithField("limit", limit).Warn("title list truncated")
	}

	results := eng.scanner.Scan(titles)
	eng.logger.WithField("titles", len(results)).Info("scan completed")

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// readTitles returns up to limit non-blank lines, trimmed. truncated is set
// when more titles were available.
func readTitles(r io.Reader, limit int) (titles []string, truncated bool, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	titles = []string{}
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		if len(titles) == limit {
			return titles, true, nil
		}
		titles = append(titles, line)
	}
	if err := sc.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read titles: %w", err)
	}
	return titles, false, nil
}
