package svinsight

import (
	"encoding/json"
	"fmt"
	"strings"

	"lop/dpboard/internal/app/pkg/errorx"
)

// 清洗参数：过短的行是噪声，过长的行不适合做操作建议
const (
	minLineLength      = 10
	maxLineLength      = 150
	maxRecommendations = 4
)

// ParseRecommendations 把 LLM 自由文本解析为 1-4 条干净的建议
// 防御式解析：优先尝试 JSON 数组，失败后按行拆分；
// 去掉编号、项目符号和 markdown 强调，行长限制在 10-150 字符
func ParseRecommendations(content string) ([]string, error) {
	content = stripCodeFence(content)

	lines := tryJSONArray(content)
	if lines == nil {
		lines = strings.Split(content, "\n")
	}

	recommendations := make([]string, 0, maxRecommendations)
	for _, line := range lines {
		cleaned := cleanLine(line)
		if len(cleaned) < minLineLength || len(cleaned) > maxLineLength {
			continue
		}
		recommendations = append(recommendations, cleaned)
		if len(recommendations) == maxRecommendations {
			break
		}
	}

	if len(recommendations) == 0 {
		return nil, fmt.Errorf("%w: no usable recommendations in %d chars", errorx.ErrLLMResponseInvalid, len(content))
	}

	return recommendations, nil
}

// stripCodeFence 去掉 markdown 代码围栏
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// tryJSONArray 内容可能是字符串数组的 JSON，解析失败返回 nil
func tryJSONArray(content string) []string {
	if !strings.HasPrefix(content, "[") {
		return nil
	}
	var lines []string
	if err := json.Unmarshal([]byte(content), &lines); err != nil {
		return nil
	}
	return lines
}

// cleanLine 去掉编号前缀、项目符号和 markdown 强调
func cleanLine(line string) string {
	line = strings.TrimSpace(line)

	// 项目符号
	for _, prefix := range []string{"- ", "* ", "• "} {
		line = strings.TrimPrefix(line, prefix)
	}

	// 编号前缀，如 "1. " / "12) "
	if i := prefixNumberEnd(line); i > 0 {
		line = strings.TrimSpace(line[i:])
	}

	// markdown 强调
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "__", "")
	line = strings.Trim(line, "\"")

	return strings.TrimSpace(line)
}

// prefixNumberEnd 返回行首编号（数字 + '.'/')'）结束的位置，没有编号返回 0
func prefixNumberEnd(line string) int {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return 0
	}
	if line[i] == '.' || line[i] == ')' {
		return i + 1
	}
	return 0
}
