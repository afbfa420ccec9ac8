// Package position classifies free-text position labels ("소프라노 위원장" 등)
// into a structured {part, job} pair.
package position

import "strings"

// Parts is the vocal part vocabulary, in match order.
var Parts = []string{"소프라노", "알토", "테너", "베이스"}

// Jobs is the job title vocabulary, in match order.
// 부위원장이 위원장보다 앞에 있어야 한다: 더 긴 토큰이 먼저 매칭되어야
// "부위원장"이 "위원장"으로 잘못 분류되지 않는다.
var Jobs = []string{
	"부위원장", "위원장", "부장", "차장", "파트장", "솔리스트",
	"대장", "지휘자", "반주자", "총무", "회계", "서기", "대원",
}

// Parsed is the derived {part, job} pair. Not persisted; recomputed on every read.
type Parsed struct {
	Part string `json:"part"`
	Job  string `json:"job"`
}

// Parse extracts the first matching part and job token from a position label.
// Matching is substring containment in vocabulary declaration order.
// Empty or unmatched input yields empty strings; Parse never fails.
func Parse(position string) Parsed {
	if position == "" {
		return Parsed{}
	}

	var parsed Parsed
	for _, p := range Parts {
		if strings.Contains(position, p) {
			parsed.Part = p
			break
		}
	}
	for _, j := range Jobs {
		if strings.Contains(position, j) {
			parsed.Job = j
			break
		}
	}
	return parsed
}

// Format composes a position label from structured input, joining
// non-empty tokens with a space. Inverse of Parse for well-formed pairs.
func Format(part, job string) string {
	tokens := make([]string, 0, 2)
	if part != "" {
		tokens = append(tokens, part)
	}
	if job != "" {
		tokens = append(tokens, job)
	}
	return strings.Join(tokens, " ")
}
