package analyses

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/curator/pkg/repository"
)

const columns = `id, text, is_fraud, fraud_type, explanation, similar_cases,
	new_type_name, warning_signs, precautions, model, provider, created_at`

// Filters contains optional filtering criteria for analysis queries.
// Nil fields are ignored. FraudType matches exactly after upper-casing.
type Filters struct {
	IsFraud   *bool   `json:"is_fraud,omitempty"`
	FraudType *string `json:"fraud_type,omitempty"`
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("is_fraud"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IsFraud = &b
		}
	}

	if v := values.Get("fraud_type"); v != "" {
		ft := strings.ToUpper(strings.TrimSpace(v))
		f.FraudType = &ft
	}

	return f
}

// where renders the filter and search conditions as a WHERE clause with
// positional arguments.
func (f Filters) where(search *string) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.IsFraud != nil {
		add("is_fraud = $%d", *f.IsFraud)
	}
	if f.FraudType != nil {
		add("fraud_type = $%d", *f.FraudType)
	}
	if search != nil && *search != "" {
		add("(text ILIKE $%[1]d OR explanation ILIKE $%[1]d)", "%"+*search+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanAnalysis(s repository.Scanner) (Analysis, error) {
	var (
		a                              Analysis
		similar, warnings, precautions []byte
	)

	err := s.Scan(
		&a.ID,
		&a.Text,
		&a.IsFraud,
		&a.FraudType,
		&a.Explanation,
		&similar,
		&a.NewTypeName,
		&warnings,
		&precautions,
		&a.Model,
		&a.Provider,
		&a.Timestamp,
	)
	if err != nil {
		return a, err
	}

	for _, field := range []struct {
		raw  []byte
		dest *[]string
	}{
		{similar, &a.SimilarCases},
		{warnings, &a.WarningSigns},
		{precautions, &a.Precautions},
	} {
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return a, fmt.Errorf("decode analysis list: %w", err)
		}
	}

	return a, nil
}

// marshalList encodes list as a JSON array for a JSONB column.
func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	return string(data), err
}
