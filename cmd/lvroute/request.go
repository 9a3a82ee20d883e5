package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/tsp"
)

var errNoMatrix = errors.New("request has neither distance nor points")

// Request is one routing job. Either Distance or Points must be set; with
// Points only, an offline haversine matrix is derived.
type Request struct {
	ID            string       `json:"id"`
	Names         []string     `json:"names,omitempty"`
	Distance      [][]float64  `json:"distance,omitempty"`
	Duration      [][]int64    `json:"duration,omitempty"`
	Points        [][2]float64 `json:"points,omitempty"`
	ReturnToStart bool         `json:"return_to_start"`
}

// LegJSON is the wire form of tsp.Leg.
type LegJSON struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Duration int64   `json:"duration"`
}

// Response is one routing result. Error is set instead of the route fields
// when the request was rejected.
type Response struct {
	ID            string    `json:"id"`
	Order         []int     `json:"order,omitempty"`
	Names         []string  `json:"names,omitempty"`
	TotalDistance float64   `json:"total_distance"`
	TotalDuration int64     `json:"total_duration"`
	Strategy      string    `json:"strategy,omitempty"`
	Fallback      bool      `json:"fallback"`
	Legs          []LegJSON `json:"legs,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// decodeRequests accepts either a JSON array of requests or a single object.
// Requests without an id get a random one.
func decodeRequests(data []byte) ([]Request, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty input")
	}

	var reqs []Request
	if trimmed[0] == '[' {
		if err := sonnet.Unmarshal(trimmed, &reqs); err != nil {
			return nil, fmt.Errorf("decode requests: %w", err)
		}
	} else {
		var one Request
		if err := sonnet.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		reqs = []Request{one}
	}
	for i := range reqs {
		if reqs[i].ID == "" {
			reqs[i].ID = uuid.NewString()
		}
	}

	return reqs, nil
}

// encodeResponses renders responses as a JSON array.
func encodeResponses(resps []Response) ([]byte, error) {
	out, err := sonnet.Marshal(resps)
	if err != nil {
		return nil, fmt.Errorf("encode responses: %w", err)
	}

	return append(out, '\n'), nil
}

// costMatrix materializes the request's CostMatrix.
func (r Request) costMatrix(speedKmh float64) (*matrix.CostMatrix, error) {
	if len(r.Distance) > 0 {
		return matrix.NewCostMatrix(r.Distance, r.Duration)
	}
	if len(r.Points) > 0 {
		pts := make([]matrix.Point, len(r.Points))
		for i, p := range r.Points {
			pts[i] = matrix.Point{Lat: p[0], Lng: p[1]}
		}

		return matrix.FromCoordinates(pts, speedKmh)
	}

	return nil, errNoMatrix
}

// name resolves a node index to its display name, or its index.
func (r Request) name(i int) string {
	if i >= 0 && i < len(r.Names) && r.Names[i] != "" {
		return r.Names[i]
	}

	return fmt.Sprintf("#%d", i)
}

// buildResponse shapes an optimizer result for output.
func buildResponse(req Request, cm *matrix.CostMatrix, res tsp.Result) (Response, error) {
	legs, err := tsp.Legs(cm, res.Tour)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		ID:            req.ID,
		Order:         res.Tour,
		Names:         make([]string, len(res.Tour)),
		TotalDistance: math.Round(res.Cost*100) / 100,
		TotalDuration: res.Duration,
		Strategy:      res.Strategy,
		Fallback:      res.Fallback,
		Legs:          make([]LegJSON, len(legs)),
	}
	for i, v := range res.Tour {
		resp.Names[i] = req.name(v)
	}
	for i, l := range legs {
		resp.Legs[i] = LegJSON{
			From:     req.name(l.From),
			To:       req.name(l.To),
			Distance: l.Distance,
			Duration: l.Duration,
		}
	}

	return resp, nil
}
