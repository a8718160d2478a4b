package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvFields is the column count of a bank record:
// id;theme;title;theory;code;doc;page
const csvFields = 7

// Load reads a semicolon-delimited question bank from r and returns the
// validated Bank.
func Load(r io.Reader) (*Bank, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = csvFields

	var questions []Question
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read bank record: %w", err)
		}
		line++

		q, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("bank line %d: %w", line, err)
		}
		questions = append(questions, q)
	}

	return New(questions)
}

// LoadFile reads the question bank from the CSV file at path.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func parseRecord(record []string) (Question, error) {
	id, err := strconv.Atoi(record[0])
	if err != nil {
		return Question{}, fmt.Errorf("bad question id %q", record[0])
	}
	theme, err := strconv.Atoi(record[1])
	if err != nil {
		return Question{}, fmt.Errorf("bad theme index %q", record[1])
	}
	page, err := strconv.Atoi(record[6])
	if err != nil {
		return Question{}, fmt.Errorf("bad doc page %q", record[6])
	}

	return Question{
		ID:      QuestionID(id),
		Theme:   Theme(theme),
		Title:   record[2],
		Theory:  record[3],
		Code:    record[4],
		Doc:     record[5],
		DocPage: page,
	}, nil
}
