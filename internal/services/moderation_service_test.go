package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	ms := NewModerationService()

	tests := []struct {
		name       string
		text       string
		wantClean  bool
		wantReason string
	}{
		{"empty is clean", "", true, ""},
		{"normal comment", "올린 지 6개월 지났는데 아직 문제 없어요", true, ""},
		{"banned word", "this is fucking great", false, "inappropriate_language"},
		{"banned word case insensitive", "SPAM content here", false, "inappropriate_language"},
		{"url blocked", "check https://example.com for details", false, "url_not_allowed"},
		{"www url blocked", "see www.example.com please", false, "url_not_allowed"},
		{"email blocked", "contact me at someone@example.com", false, "contact_info_not_allowed"},
		{"phone blocked", "call 010-1234-5678", false, "contact_info_not_allowed"},
		{"repeated chars", "wooooow amazing", false, "spam_detected"},
		{"substring of banned word is fine", "classic film", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, reason := ms.FilterContent(tt.text)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestGetRejectionMessage(t *testing.T) {
	ms := NewModerationService()
	assert.Equal(t, "URLs and web links are not allowed.", ms.GetRejectionMessage("url_not_allowed"))
	assert.Equal(t, "Your comment does not meet our content guidelines.", ms.GetRejectionMessage("unknown_reason"))
}

func TestExtractChannelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"channel url", "https://www.youtube.com/channel/UCabc123", "UCabc123", false},
		{"channel url with suffix", "https://youtube.com/channel/UCabc123/videos", "UCabc123", false},
		{"channel url with query", "https://youtube.com/channel/UCabc123?view=0", "UCabc123", false},
		{"bare id", "UCabc123", "UCabc123", false},
		{"bare id with whitespace", "  UCabc123  ", "UCabc123", false},
		{"empty", "", "", true},
		{"handle url unsupported", "https://youtube.com/@somehandle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractChannelID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
