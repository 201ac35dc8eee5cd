package main

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

var errNoMoviesCSV = errors.New("movies.csv not found in zip")

// downloadAndExtract fetches the MovieLens archive into a temporary
// directory and returns the path of its movies.csv. cleanup removes the
// directory and is safe to call on error.
func downloadAndExtract(zipURL string) (csvPath string, cleanup func(), err error) {
	cleanup = func() {}
	if zipURL == "" {
		return "", cleanup, errors.New("dataset url is empty")
	}

	dir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", cleanup, err
	}
	cleanup = func() { _ = os.RemoveAll(dir) }

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	archive := filepath.Join(dir, "dataset.zip")
	if err := download(ctx, zipURL, archive); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("download %s: %w", zipURL, err)
	}

	csvPath, err = extractMoviesCSV(archive, dir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}
	return csvPath, cleanup, nil
}

func download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return writeFile(dest, resp.Body)
}

func extractMoviesCSV(archive, dir string) (string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, f := range r.File {
		if path.Base(f.Name) != "movies.csv" {
			continue
		}

		src, err := f.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		dest := filepath.Join(dir, "movies.csv")
		return dest, writeFile(dest, src)
	}

	return "", errNoMoviesCSV
}

func writeFile(dest string, src io.Reader) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
