// Package catalog はメニュー一覧の並べ替えと検索。
// 件数は1店舗のメニュー（せいぜい数十件）前提なので素朴なバブルソートで十分。
// 大きなカタログにはこのまま流用しないこと。
package catalog

import (
	"strings"

	"foodie/internal/domain/model"
)

// SortByName は名前（大文字小文字を無視）で並べ替えた新しいスライスを返す。
// 入力は変更しない。隣接交換なので同名の並び順は保たれる。
func SortByName(items []model.MenuItem, asc bool) []model.MenuItem {
	sorted := make([]model.MenuItem, len(items))
	copy(sorted, items)

	n := len(sorted)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			a := strings.ToLower(sorted[j].Name)
			b := strings.ToLower(sorted[j+1].Name)

			swap := false
			if asc {
				swap = a > b
			} else {
				swap = a < b
			}
			if swap {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}
	return sorted
}

// SortByPrice は価格で並べ替えた新しいスライスを返す。入力は変更しない。
func SortByPrice(items []model.MenuItem, asc bool) []model.MenuItem {
	sorted := make([]model.MenuItem, len(items))
	copy(sorted, items)

	n := len(sorted)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			cmp := sorted[j].Price.Cmp(sorted[j+1].Price)

			swap := false
			if asc {
				swap = cmp > 0
			} else {
				swap = cmp < 0
			}
			if swap {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}
	return sorted
}

// SearchByName は名前昇順に並んだスライスを二分探索する。
// 前提が崩れていると誤った結果を返す（呼び出し側の契約）。
// 見つからなければ ok=false。
func SearchByName(sortedItems []model.MenuItem, query string) (model.MenuItem, bool) {
	target := strings.ToLower(query)

	low, high := 0, len(sortedItems)-1
	for low <= high {
		mid := (low + high) / 2
		name := strings.ToLower(sortedItems[mid].Name)

		switch {
		case name == target:
			return sortedItems[mid], true
		case name < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return model.MenuItem{}, false
}
