/**
 * @description
 * Snapshot file API Handler.
 * Serves the JSON files the snapshot service writes into the data
 * directory. Filenames are sanitized to their base name so the handler
 * cannot be walked out of the data directory.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 */

package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type DataHandler struct {
	DataDir string
}

func NewDataHandler(dataDir string) *DataHandler {
	return &DataHandler{DataDir: dataDir}
}

// ServeFile returns a snapshot JSON file by name
// GET /data/:filename
func (h *DataHandler) ServeFile(c *fiber.Ctx) error {
	filename := filepath.Base(c.Params("filename"))
	if filename == "." || filename == string(filepath.Separator) || strings.HasPrefix(filename, "..") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid filename",
		})
	}

	path := filepath.Join(h.DataDir, filename)
	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "File not found: " + filename,
		})
	}

	if strings.HasSuffix(filename, ".json") {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return c.SendFile(path)
}
