// internal/tools/knowledgetools/handler.go
package knowledgetools

import (
	"context"
	"encoding/json"

	"hr-voice-tools/internal/dispatch"
	"hr-voice-tools/internal/knowledge"
)

type QueryInput struct {
	Question string `json:"question"`
	TopK     int    `json:"topK,omitempty"`
}

func Register(d *dispatch.Dispatcher, retriever *knowledge.Retriever) error {
	return d.Bind("query_knowledge_base", func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var input QueryInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return retriever.Query(ctx, input.Question, input.TopK)
	})
}
