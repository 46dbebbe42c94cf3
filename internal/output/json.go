package output

import (
	"encoding/json"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// JSONOutput renders one result as indented JSON.
func JSONOutput(result domain.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// JSONBatchOutput renders a batch of results as one JSON array.
func JSONBatchOutput(results []domain.Result) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
