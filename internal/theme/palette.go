package theme

import "github.com/mmeshcher/shopstate/internal/model"

// Light — светлая палитра.
var Light = model.Theme{
	Background:    "#FFFFFF",
	Surface:       "#F8F9FA",
	Card:          "#FFFFFF",
	Primary:       "#4B56E9",
	Secondary:     "#6B7280",
	Text:          "#000000",
	TextSecondary: "#6B7280",
	TextTertiary:  "#9CA3AF",
	Border:        "#E5E7EB",
	Danger:        "#FF3B30",
	Success:       "#00C851",
	Warning:       "#FF9500",
	Info:          "#4B56E9",
	Shadow:        "rgba(0, 0, 0, 0.1)",
	StatusBar:     "dark-content",
}

// Dark — тёмная палитра.
var Dark = model.Theme{
	Background:    "#000000",
	Surface:       "#1A1A1A",
	Card:          "#2A2A2A",
	Primary:       "#6366F1",
	Secondary:     "#9CA3AF",
	Text:          "#FFFFFF",
	TextSecondary: "#D1D5DB",
	TextTertiary:  "#9CA3AF",
	Border:        "#374151",
	Danger:        "#FF453A",
	Success:       "#30D158",
	Warning:       "#FF9F0A",
	Info:          "#6366F1",
	Shadow:        "rgba(0, 0, 0, 0.3)",
	StatusBar:     "light-content",
}
