package model

import (
	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"
)

// ParsePlanRequest reads plan file in YAML. JSON documents are accepted too.
func ParsePlanRequest(data []byte) (PlanRequest, error) {
	var request PlanRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return PlanRequest{}, merry.Prepend(err, "unable to parse plan")
	}
	return request, nil
}

func (r PlanRequest) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}
