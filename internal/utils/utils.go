// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateString обрезает строку до указанной ширины на экране, добавляя "..." если строка шире
func TruncateString(s string, maxLen int) string {
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return ansi.Truncate(s, maxLen, "")
	}
	return ansi.Truncate(s, maxLen, "...")
}

// WrapCell разбивает текст клетки на строки шириной не больше width колонок экрана.
// Строк получается не больше maxLines, последняя обрезается через TruncateString.
func WrapCell(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		chunks := splitWide(word, width)
		for i, chunk := range chunks {
			switch {
			case current == "":
				current = chunk
			case i == 0 && ansi.StringWidth(current)+1+ansi.StringWidth(chunk) <= width:
				current += " " + chunk
			default:
				lines = append(lines, current)
				current = chunk
			}
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxLines {
		rest := strings.Join(lines[maxLines-1:], " ")
		lines = append(lines[:maxLines-1], TruncateString(rest, width))
	}
	return lines
}

// splitWide режет слово на куски шириной не больше width.
// Символ шире width остается отдельным куском.
func splitWide(word string, width int) []string {
	if ansi.StringWidth(word) <= width {
		return []string{word}
	}

	var chunks []string
	var b strings.Builder
	used := 0
	for _, r := range word {
		w := ansi.StringWidth(string(r))
		if used > 0 && used+w > width {
			chunks = append(chunks, b.String())
			b.Reset()
			used = 0
		}
		b.WriteRune(r)
		used += w
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

// Pluralize возвращает форму слова для числа n: one (1 песня), few (2 песни), many (5 песен)
func Pluralize(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return many
	case n%10 == 1:
		return one
	case n%10 >= 2 && n%10 <= 4:
		return few
	default:
		return many
	}
}
