package position_test

import (
	"testing"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/position"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantPart string
		wantJob  string
	}{
		{
			name:     "파트와 직책이 함께 있는 경우",
			input:    "소프라노 위원장",
			wantPart: "소프라노",
			wantJob:  "위원장",
		},
		{
			name:     "부위원장은 위원장으로 분류되지 않는다",
			input:    "부위원장",
			wantPart: "",
			wantJob:  "부위원장",
		},
		{
			name:     "파트만 있는 경우",
			input:    "알토",
			wantPart: "알토",
			wantJob:  "",
		},
		{
			name:     "직책만 있는 경우",
			input:    "지휘자",
			wantPart: "",
			wantJob:  "지휘자",
		},
		{
			name:     "빈 문자열",
			input:    "",
			wantPart: "",
			wantJob:  "",
		},
		{
			name:     "알 수 없는 토큰",
			input:    "Singer",
			wantPart: "",
			wantJob:  "",
		},
		{
			name:     "주변 텍스트가 있어도 부분 문자열로 매칭된다",
			input:    "테너(신입) 총무",
			wantPart: "테너",
			wantJob:  "총무",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := position.Parse(tc.input)

			assert.Equal(t, tc.wantPart, parsed.Part)
			assert.Equal(t, tc.wantJob, parsed.Job)
		})
	}
}

func TestParse_VocabularyOrderWins(t *testing.T) {
	// 텍스트상 위원장이 먼저 나타나도 어휘 순서가 우선이므로
	// 부위원장이 포함되어 있으면 부위원장이 매칭된다.
	parsed := position.Parse("위원장 아님, 부위원장")

	assert.Equal(t, "부위원장", parsed.Job)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "소프라노 위원장", position.Format("소프라노", "위원장"))
	assert.Equal(t, "베이스", position.Format("베이스", ""))
	assert.Equal(t, "회계", position.Format("", "회계"))
	assert.Equal(t, "", position.Format("", ""))
}

func TestParse_FormatRoundTrip(t *testing.T) {
	for _, part := range position.Parts {
		for _, job := range position.Jobs {
			parsed := position.Parse(position.Format(part, job))

			assert.Equal(t, part, parsed.Part)
			assert.Equal(t, job, parsed.Job)
		}
	}
}
