package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"hemis/m/domain"
)

// Column order of a medicine intake CSV. The first line is a header.
const (
	colName = iota
	colCategory
	colQuantity
	colUnitPrice
	colExpiryDate
	colBatchNumber
	colDescription
	minColumns = colBatchNumber + 1
)

// LoadMedicines creates one medicine per row of the CSV at csvPath. Rows that
// cannot be parsed or fail validation are logged and skipped. It returns the
// number of medicines created.
func (s *Seeder) LoadMedicines(ctx context.Context, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("unable to load medicine intake %s: %w", csvPath, err)
	}
	defer file.Close()
	return s.readMedicines(ctx, file)
}

func (s *Seeder) readMedicines(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("unable to read medicine header: %w", err)
	}

	rows := 0
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.logger.Warn("unable to read medicine row", zap.Int("line", line), zap.Error(err))
			continue
		}
		m, err := parseMedicine(record)
		if err != nil {
			s.logger.Warn("skipping medicine row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if _, err := s.writer.CreateMedicine(ctx, m); err != nil {
			if ctx.Err() != nil {
				return rows, ctx.Err()
			}
			s.logger.Warn("unable to insert medicine", zap.Int("line", line), zap.String("name", m.Name), zap.Error(err))
			continue
		}
		rows++
	}

	s.logger.Info("loaded medicine intake", zap.Int("rows", rows))
	return rows, nil
}

func parseMedicine(record []string) (domain.Medicine, error) {
	if len(record) < minColumns {
		return domain.Medicine{}, fmt.Errorf("expected at least %d columns, got %d", minColumns, len(record))
	}
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	quantity, err := strconv.ParseInt(field(colQuantity), 10, 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("invalid quantity %q", field(colQuantity))
	}
	price, err := strconv.ParseFloat(field(colUnitPrice), 64)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("invalid unit price %q", field(colUnitPrice))
	}
	expiry, err := domain.ParseDate(field(colExpiryDate))
	if err != nil {
		return domain.Medicine{}, err
	}

	return domain.Medicine{
		Name:        field(colName),
		Category:    field(colCategory),
		Quantity:    quantity,
		UnitPrice:   price,
		ExpiryDate:  expiry,
		BatchNumber: field(colBatchNumber),
		Description: field(colDescription),
	}, nil
}
