package world

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Zone files live under a single directory, one grid per file:
// <zone>.walling, <zone>.flooring, <zone>.ceiling plus the optional
// <zone>.portals table. Each grid file is rectangular rows of raw
// tile codes.

// readGrid loads one rectangular grid of tile codes
func readGrid(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open grid %s", path)
	}
	defer file.Close()

	var grid [][]byte
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		row := []byte(scanner.Text())
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, errors.Errorf("grid %s: row %d is %d wide, want %d", path, len(grid), len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read grid %s", path)
	}
	if len(grid) == 0 {
		return nil, errors.Errorf("grid %s is empty", path)
	}
	return grid, nil
}

// closed verifies the walling boundary is fully opaque. An open
// boundary would let a ray march off the grid
func closed(walling [][]byte) error {
	rows := len(walling)
	cols := len(walling[0])
	for x := 0; x < cols; x++ {
		if walling[0][x] == TileEmpty || walling[rows-1][x] == TileEmpty {
			return errors.Errorf("walling boundary open at column %d", x)
		}
	}
	for y := 0; y < rows; y++ {
		if walling[y][0] == TileEmpty || walling[y][cols-1] == TileEmpty {
			return errors.Errorf("walling boundary open at row %d", y)
		}
	}
	return nil
}

// Load reads a zone's three grids from dir and validates their shape
func Load(dir, zone string) (*Map, error) {
	walling, err := readGrid(filepath.Join(dir, zone+".walling"))
	if err != nil {
		return nil, err
	}
	flooring, err := readGrid(filepath.Join(dir, zone+".flooring"))
	if err != nil {
		return nil, err
	}
	ceiling, err := readGrid(filepath.Join(dir, zone+".ceiling"))
	if err != nil {
		return nil, err
	}
	if len(flooring) != len(walling) || len(ceiling) != len(walling) ||
		len(flooring[0]) != len(walling[0]) || len(ceiling[0]) != len(walling[0]) {
		return nil, errors.Errorf("zone %s: grid shapes differ", zone)
	}
	if err := closed(walling); err != nil {
		return nil, errors.Wrapf(err, "zone %s", zone)
	}
	return &Map{
		Rows:     len(walling),
		Cols:     len(walling[0]),
		Walling:  walling,
		Flooring: flooring,
		Ceiling:  ceiling,
	}, nil
}
