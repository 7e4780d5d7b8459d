package models

type MediaItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Data     string `json:"data"`
	FileName string `json:"fileName"`
	Opinion  string `json:"opinion"`
	Date     string `json:"date"`
}
