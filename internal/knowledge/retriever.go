// Package knowledge answers policy and FAQ questions from an Elasticsearch
// index of HR documentation. Answers are cached in Redis so repeat questions
// within a call (or across calls) skip the search round-trip. Every failure
// mode degrades to a fixed apologetic answer; the conversation never sees a
// retrieval error.
package knowledge

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"

	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/match"
)

const (
	maxAnswerLength = 800
	cacheKeyPrefix  = "kb:"

	fallbackAnswer = "I'm sorry, I couldn't find that in our HR documentation right now. " +
		"Let me connect you with a recruiter who can help."
)

// Snippet is one retrieved passage with its source document.
type Snippet struct {
	Text   string  `json:"text"`
	Source string  `json:"source,omitempty"`
	Score  float64 `json:"score,omitempty"`
}

// Answer is the stitched response handed to the agent for narration.
type Answer struct {
	Answer   string    `json:"answer"`
	Snippets []Snippet `json:"snippets"`
	Cached   bool      `json:"cached,omitempty"`
}

type Retriever struct {
	es       *elasticsearch.Client
	cache    *redis.Client
	index    string
	topK     int
	cacheTTL time.Duration
	logger   logger.Logger
}

// NewRetriever accepts nil clients: a nil Elasticsearch client answers with
// the fallback, a nil Redis client just skips caching.
func NewRetriever(es *elasticsearch.Client, cache *redis.Client, index string, topK int, cacheTTL time.Duration, log logger.Logger) *Retriever {
	if topK <= 0 {
		topK = 4
	}
	return &Retriever{
		es:       es,
		cache:    cache,
		index:    index,
		topK:     topK,
		cacheTTL: cacheTTL,
		logger:   log.WithFields(map[string]interface{}{"service": "knowledge"}),
	}
}

// Query answers the question, consulting the cache first. The error return is
// reserved for programming mistakes; retrieval failures come back as the
// fallback answer with no snippets.
func (r *Retriever) Query(ctx context.Context, question string, topK int) (*Answer, error) {
	if topK <= 0 {
		topK = r.topK
	}

	normalized := match.NormalizeText(question)
	if normalized == "" {
		return &Answer{Answer: fallbackAnswer, Snippets: []Snippet{}}, nil
	}

	cacheKey := cacheKeyPrefix + normalized
	if cached := r.fromCache(ctx, cacheKey); cached != nil {
		cached.Cached = true
		return cached, nil
	}

	snippets, ok := r.search(ctx, question, topK)
	if !ok || len(snippets) == 0 {
		return &Answer{Answer: fallbackAnswer, Snippets: []Snippet{}}, nil
	}

	ans := &Answer{Answer: stitch(snippets), Snippets: snippets}
	r.toCache(ctx, cacheKey, ans)
	return ans, nil
}

func (r *Retriever) fromCache(ctx context.Context, key string) *Answer {
	if r.cache == nil {
		return nil
	}
	val, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug("cache get failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
	var ans Answer
	if err := json.Unmarshal([]byte(val), &ans); err != nil {
		return nil
	}
	return &ans
}

func (r *Retriever) toCache(ctx context.Context, key string, ans *Answer) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(ans)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.cacheTTL).Err(); err != nil {
		r.logger.Debug("cache set failed", map[string]interface{}{"error": err.Error()})
	}
}

// search runs a match query over the text field. ok=false covers the nil
// client, transport failures, non-2xx responses and undecodable bodies alike.
func (r *Retriever) search(ctx context.Context, question string, topK int) ([]Snippet, bool) {
	if r.es == nil {
		return nil, false
	}

	body, _ := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"text": map[string]interface{}{
					"query": question,
				},
			},
		},
		"size": topK,
	})

	req := esapi.SearchRequest{
		Index: []string{r.index},
		Body:  strings.NewReader(string(body)),
	}

	res, err := req.Do(ctx, r.es)
	if err != nil {
		r.logger.Warn("knowledge search failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	defer res.Body.Close()

	if res.IsError() {
		r.logger.Warn("knowledge search returned error", map[string]interface{}{"status": res.Status()})
		return nil, false
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64 `json:"_score"`
				Source struct {
					Text   string `json:"text"`
					Source string `json:"source"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		r.logger.Warn("knowledge response decode failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	}

	snippets := make([]Snippet, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		if strings.TrimSpace(hit.Source.Text) == "" {
			continue
		}
		snippets = append(snippets, Snippet{
			Text:   hit.Source.Text,
			Source: hit.Source.Source,
			Score:  hit.Score,
		})
	}
	return snippets, true
}

// stitch joins snippet texts in score order and caps the result so the answer
// stays narratable over a phone call.
func stitch(snippets []Snippet) string {
	var b strings.Builder
	for _, s := range snippets {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(text)
		if b.Len() >= maxAnswerLength {
			break
		}
	}
	answer := b.String()
	if len(answer) > maxAnswerLength {
		answer = answer[:maxAnswerLength]
		if idx := strings.LastIndex(answer, " "); idx > 0 {
			answer = answer[:idx]
		}
		answer += "…"
	}
	return answer
}
