package world

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/andvaranaut/vmath"
)

// Portal links a world point to the zone it teleports into
type Portal struct {
	Where vmath.Point
	Name  string
}

// Portals is the portal table of one zone
type Portals []Portal

// parsePortal decodes one "<x>,<y> <name>" line. Anything after a
// '#' is a comment
func parsePortal(line string) (Portal, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Portal{}, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Portal{}, false, errors.Errorf("portal line %q: want \"<x>,<y> <name>\"", line)
	}
	coords := strings.SplitN(fields[0], ",", 2)
	if len(coords) != 2 {
		return Portal{}, false, errors.Errorf("portal line %q: bad coordinate pair", line)
	}
	var p Portal
	var err error
	if p.Where.X, err = strconv.ParseFloat(coords[0], 64); err != nil {
		return Portal{}, false, errors.Wrapf(err, "portal line %q", line)
	}
	if p.Where.Y, err = strconv.ParseFloat(coords[1], 64); err != nil {
		return Portal{}, false, errors.Wrapf(err, "portal line %q", line)
	}
	p.Name = fields[1]
	return p, true, nil
}

// LoadPortals reads a zone's portal table. A missing file is an
// empty table, not an error - most zones have no exits of their own
func LoadPortals(dir, zone string) (Portals, error) {
	file, err := os.Open(filepath.Join(dir, zone+".portals"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "open portals for zone %s", zone)
	}
	defer file.Close()

	var portals Portals
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		p, ok, err := parsePortal(scanner.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			portals = append(portals, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read portals for zone %s", zone)
	}
	return portals, nil
}

// At returns the portal within reach of p, or nil
func (ps Portals) At(p vmath.Point, reach float64) *Portal {
	for i := range ps {
		if ps[i].Where.Near(p, reach) {
			return &ps[i]
		}
	}
	return nil
}
