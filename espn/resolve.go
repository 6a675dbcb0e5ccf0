package espn

import (
	"context"
	"strings"
	"sync"
)

// resolvedAthlete is the subset of the core API athlete record needed to
// identify a scorer.
type resolvedAthlete struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	DisplayName string    `json:"displayName"`
	Position    *Position `json:"position,omitempty"`
	Headshot    *Headshot `json:"headshot,omitempty"`
}

type resolvedPosition struct {
	Abbreviation string `json:"abbreviation"`
}

// RewriteRefURL applies the configured proxy prefix to a core API reference
// URL. Without a prefix the URL passes through unchanged.
func (c *Client) RewriteRefURL(refURL string) string {
	if c.proxyPrefix == "" {
		return refURL
	}
	return strings.Replace(refURL, CoreBaseURL, c.proxyPrefix, 1)
}

// ResolveRef dereferences a core API $ref URL into v, applying the proxy
// rewrite when configured.
func (c *Client) ResolveRef(ctx context.Context, refURL string, v any) error {
	return c.getJSON(ctx, "ref", c.RewriteRefURL(refURL), v)
}

// ResolveScorers fetches scorer identities for every touchdown play
// (scoreValue == 6) in one concurrent pass. The result maps play ID to
// the resolved scorer. Plays whose references fail to resolve are simply
// absent from the map; one bad reference never fails the batch.
func (c *Client) ResolveScorers(ctx context.Context, plays []PlayByPlayItem) map[string]Scorer {
	type lookup struct {
		playID      string
		athleteRef  string
		positionRef string
	}

	var lookups []lookup
	for _, play := range plays {
		if play.ScoreValue != 6 {
			continue
		}
		for _, participant := range play.Participants {
			if participant.Type != ParticipantScorer || participant.Athlete.Ref == "" {
				continue
			}
			lookups = append(lookups, lookup{
				playID:      play.ID,
				athleteRef:  participant.Athlete.Ref,
				positionRef: participant.Position.Ref,
			})
			break
		}
	}
	if len(lookups) == 0 {
		return nil
	}

	scorers := make(map[string]Scorer, len(lookups))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, l := range lookups {
		wg.Add(1)
		go func(l lookup) {
			defer wg.Done()

			var athlete resolvedAthlete
			if err := c.ResolveRef(ctx, l.athleteRef, &athlete); err != nil {
				c.logger.Debug("scorer athlete unresolved", "play", l.playID, "error", err)
				return
			}
			if athlete.DisplayName == "" {
				return
			}

			scorer := Scorer{Name: athlete.DisplayName}
			if athlete.Headshot != nil {
				scorer.Headshot = athlete.Headshot.Href
			}
			if athlete.Position != nil {
				scorer.Position = athlete.Position.Abbreviation
			}
			if l.positionRef != "" {
				var pos resolvedPosition
				if err := c.ResolveRef(ctx, l.positionRef, &pos); err == nil && pos.Abbreviation != "" {
					scorer.Position = pos.Abbreviation
				}
			}

			mu.Lock()
			scorers[l.playID] = scorer
			mu.Unlock()
		}(l)
	}
	wg.Wait()

	return scorers
}
