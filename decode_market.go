package legacyguard

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/legacyguard/date"
)

// Market data file names inside the data directory.
const (
	assetsFile   = "assets.csv"
	pricesFile   = "prices.csv"
	missionsFile = "missions.csv"
)

// DecodeMarketData loads the three market data files from 'dir'.
//
// Any missing file or malformed cell is an error: market data is a startup
// requirement, a broken dataset must never surface as a per-request failure.
func DecodeMarketData(dir string) (*MarketData, error) {
	m := NewMarketData()

	if err := decodeFile(dir, assetsFile, m.decodeAssets); err != nil {
		return nil, err
	}
	if err := decodeFile(dir, pricesFile, m.decodePrices); err != nil {
		return nil, err
	}
	if err := decodeFile(dir, missionsFile, m.decodeMissions); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid market data in %q: %w", dir, err)
	}
	log.Printf("market-data-loaded dir=%q assets=%d days=%d missions=%d", dir, len(m.assets), len(m.dates), len(m.missions))
	return m, nil
}

func decodeFile(dir, name string, decode func(io.Reader) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("cannot open market data file: %w", err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("cannot decode %q: %w", name, err)
	}
	return nil
}

// decodeAssets reads the asset catalog: header "ticker,name,sector".
func (m *MarketData) decodeAssets(r io.Reader) error {
	records, err := readAll(r, 3)
	if err != nil {
		return err
	}
	for _, rec := range records {
		m.AddAsset(Asset{Ticker: rec[0], Name: rec[1], Sector: rec[2]})
	}
	return nil
}

// decodePrices reads the price table: header "date,<ticker>,<ticker>,...".
// The row order in the file defines the day index.
func (m *MarketData) decodePrices(r io.Reader) error {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("cannot read price header: %w", err)
	}
	if len(header) < 2 || header[0] != "date" {
		return fmt.Errorf("price header must start with %q, got %v", "date", header)
	}
	tickers := header[1:]

	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("price row %d: %w", row, err)
		}
		on, err := date.Parse(rec[0])
		if err != nil {
			return fmt.Errorf("price row %d: %w", row, err)
		}
		prices := make(map[string]Money, len(tickers))
		for i, ticker := range tickers {
			p, err := ParseMoney(rec[i+1])
			if err != nil {
				return fmt.Errorf("price row %d ticker %q: %w", row, ticker, err)
			}
			prices[ticker] = p
		}
		m.AppendRow(on, prices)
	}
}

// decodeMissions reads the mission catalog: header "title,hint,effect_days".
func (m *MarketData) decodeMissions(r io.Reader) error {
	records, err := readAll(r, 3)
	if err != nil {
		return err
	}
	for _, rec := range records {
		days, err := parseEffectDays(rec[2])
		if err != nil {
			return fmt.Errorf("mission %q: %w", rec[0], err)
		}
		m.AddMission(rec[0], rec[1], days)
	}
	return nil
}

// readAll reads a whole CSV document, skipping the header row and checking
// the field count.
func readAll(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	return records[1:], nil
}
