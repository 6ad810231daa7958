package transfer

import "fmt"

// PostCreation is the dashboard's post body. The UI historically sent the
// text under "content"; "summary" is accepted as well and wins when both
// are present.
type PostCreation struct {
	Summary      string       `json:"summary,omitempty"`
	Content      string       `json:"content,omitempty"`
	CallToAction *CTAInput    `json:"callToAction,omitempty"`
	Media        []MediaInput `json:"media,omitempty"`
}

type CTAInput struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

type MediaInput struct {
	Format    string `json:"format"` // image, video
	SourceURL string `json:"sourceUrl"`
}

// Text returns the effective post summary.
func (pc *PostCreation) Text() string {
	if pc.Summary != "" {
		return pc.Summary
	}
	return pc.Content
}

var ctaActionTypes = map[string]string{
	"Learn More":     "LEARN_MORE",
	"Book Now":       "BOOK",
	"Call":           "CALL",
	"Get Directions": "GET_DIRECTIONS",
}

var mediaFormats = map[string]string{
	"image": "PHOTO",
	"video": "VIDEO",
}

// ToLocalPost maps the dashboard body to the upstream localPost payload.
// A call-to-action without a type is dropped entirely rather than sent
// malformed; an unknown type or media format is a validation error.
func (pc *PostCreation) ToLocalPost() (*LocalPost, error) {
	lp := &LocalPost{
		Summary: pc.Text(),
	}

	if pc.CallToAction != nil && pc.CallToAction.Type != "" {
		actionType, ok := ctaActionTypes[pc.CallToAction.Type]
		if !ok {
			return nil, fmt.Errorf("unknown call to action type: %s", pc.CallToAction.Type)
		}
		lp.CallToAction = &CallToAction{
			ActionType: actionType,
			URL:        pc.CallToAction.URL,
		}
	}

	for _, m := range pc.Media {
		format, ok := mediaFormats[m.Format]
		if !ok {
			return nil, fmt.Errorf("unknown media format: %s", m.Format)
		}
		if m.SourceURL == "" {
			return nil, fmt.Errorf("media source url is empty")
		}
		lp.Media = append(lp.Media, MediaItem{
			MediaFormat: format,
			SourceURL:   m.SourceURL,
		})
	}

	return lp, nil
}
