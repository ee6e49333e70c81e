// Package frostdata imports the static ZIP-to-frost-date table from CSV or
// XLSX files published by climate data providers.
package frostdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"seedwizard/entities"
)

// LoadFromFiles reads whichever of the two paths are set and merges rows,
// CSV first. Returns an error only when nothing usable was loaded.
func LoadFromFiles(csvPath, xlsxPath string) ([]entities.ZipFrost, error) {
	var rows []entities.ZipFrost

	if csvPath != "" {
		r, err := loadCSV(csvPath)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	if xlsxPath != "" {
		if r, err := loadXLSX(xlsxPath); err == nil {
			rows = append(rows, r...)
		}
	}

	if len(rows) == 0 {
		return nil, errors.New("no frost data loaded")
	}
	return rows, nil
}

// Headers vary between data sources, so match normalized aliases.
func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type columns struct {
	zip, zone, last, first, lat, lon, station int
}

func mapColumns(head []string) (columns, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	c := columns{
		zip:     findAny("zip_code", "zip", "zipcode", "postal_code"),
		zone:    findAny("hardiness_zone", "zone", "usda_zone"),
		last:    findAny("last_frost_date_avg", "last_frost_date", "last_frost", "spring_frost"),
		first:   findAny("first_frost_date_avg", "first_frost_date", "first_frost", "fall_frost"),
		lat:     findAny("latitude", "lat"),
		lon:     findAny("longitude", "lon", "lng"),
		station: findAny("station_name", "station"),
	}
	if c.zip == -1 || c.last == -1 {
		return c, fmt.Errorf("frost data missing required columns, found headers: %v", head)
	}
	return c, nil
}

func rowToEntity(rec []string, c columns) (entities.ZipFrost, bool) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	zip := get(c.zip)
	if len(zip) != 5 {
		return entities.ZipFrost{}, false
	}

	z := entities.ZipFrost{
		ZipCode:           zip,
		HardinessZone:     get(c.zone),
		LastFrostDateAvg:  get(c.last),
		FirstFrostDateAvg: get(c.first),
		StationName:       get(c.station),
	}
	if v, err := strconv.ParseFloat(get(c.lat), 64); err == nil {
		z.Latitude = &v
	}
	if v, err := strconv.ParseFloat(get(c.lon), 64); err == nil {
		z.Longitude = &v
	}
	return z, true
}

func loadCSV(path string) ([]entities.ZipFrost, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	cols, err := mapColumns(head)
	if err != nil {
		return nil, err
	}

	var out []entities.ZipFrost
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if z, ok := rowToEntity(rec, cols); ok {
			out = append(out, z)
		}
	}
	return out, nil
}

func loadXLSX(path string) ([]entities.ZipFrost, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("xlsx has no data rows")
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var out []entities.ZipFrost
	for _, rec := range rows[1:] {
		if z, ok := rowToEntity(rec, cols); ok {
			out = append(out, z)
		}
	}
	return out, nil
}
