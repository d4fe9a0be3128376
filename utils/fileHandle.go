package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// SaveUploadedFile stores a multipart upload under destDir with a
// unique name and returns the stored filename.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// FetchPosterFromURL downloads a poster image from a remote URL into
// destDir and returns the stored filename.
func FetchPosterFromURL(posterURL, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	client := resty.New()
	resp, err := client.R().Get(posterURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to fetch poster, code: %d", resp.StatusCode())
	}

	ext := filepath.Ext(strings.Split(posterURL, "?")[0])
	if ext == "" {
		ext = ".jpg"
	}
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	if err := os.WriteFile(filePath, resp.Body(), 0644); err != nil {
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored filename to its public URL.
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
