package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// canvasBudget is the memory reserved per worker: one A4 page at 300 DPI in RGBA
// plus its decoded source.
const canvasBudget = 2 * 2480 * 3508 * 4

// RecommendedWorkers caps requested (0 = one per logical CPU) by the CPU count and
// by how many canvases fit into half of the available memory.
func RecommendedWorkers(requested int) int {
	cores, err := cpu.Counts(true)
	if err != nil || cores < 1 {
		cores = runtime.NumCPU()
	}

	workers := requested
	if workers <= 0 || workers > cores {
		workers = cores
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("[!] Не удалось получить объем памяти: %v", err)
		return workers
	}

	byMemory := int(vm.Available / 2 / canvasBudget)
	if byMemory < 1 {
		byMemory = 1
	}
	if workers > byMemory {
		workers = byMemory
	}
	return workers
}

// FindLatestPDF returns the most recently modified PDF in dir
func FindLatestPDF(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(strings.ToLower(f.Name()), ".pdf") {
			info, err := f.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(latestTime) {
				latestTime = info.ModTime()
				latestFile = filepath.Join(dir, f.Name())
			}
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено PDF-файлов", dir)
	}

	return latestFile, nil
}
