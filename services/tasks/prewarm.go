package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeLocationsPrewarm = "locations:prewarm"

// PrewarmPayload selects what to warm. No cities means the full city list plus
// every curated city's areas.
type PrewarmPayload struct {
	Cities []string `json:"cities,omitempty"`
}

func NewPrewarmTask(payload PrewarmPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode prewarm payload: %w", err)
	}
	return asynq.NewTask(TypeLocationsPrewarm, b), nil
}

func ParsePrewarmPayload(task *asynq.Task) (PrewarmPayload, error) {
	var p PrewarmPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("decode prewarm payload: %w", err)
	}
	return p, nil
}
