package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hazadus/go-bingo/internal/bingo"
)

// readSongs читает текст с песнями из файла или из in, если путь пуст или "-"
func readSongs(path string, in io.Reader) (string, error) {
	if path == "" || path == "-" {
		if in == nil {
			return "", fmt.Errorf("нет источника песен")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения песен: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения файла с песнями: %w", err)
	}
	return string(data), nil
}

// confirmDelete возвращает функцию подтверждения, читающую ответ y/N из in
func confirmDelete(in io.Reader) bingo.Confirm {
	return func(name string) bool {
		fmt.Printf("❓ Удалить плейлист %q? [y/N]: ", name)
		if in == nil {
			return false
		}

		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			fmt.Println()
			return false
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes", "д", "да":
			return true
		default:
			return false
		}
	}
}
