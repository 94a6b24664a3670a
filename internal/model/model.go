// Package model содержит доменные сущности клиентского состояния маркетплейса.
package model

import (
	"errors"
	"math"
	"time"
)

// Ключи постоянного хранилища. Каждое хранилище владеет своим ключом.
const (
	KeyCart          = "cart"
	KeyThemeMode     = "themeMode"
	KeyUserProducts  = "userProducts"
	KeySellerProfile = "sellerProfile"
	KeyProfileImage  = "profileImage"
)

// CategoryAll — служебная категория «все товары».
const CategoryAll = "Home"

// Categories перечисляет категории в порядке отображения на главном экране.
var Categories = []string{
	CategoryAll,
	"Electronic",
	"Fashion",
	"Beauty",
	"Health",
	"Sports",
	"Fitness",
	"Appliance",
	"Jewelry",
	"Furniture",
	"Gaming",
}

// IsKnownCategory сообщает, входит ли категория в известный набор (включая Home).
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ProductRef — закрытый набор ссылок на товар, из которых можно собрать позицию корзины.
// Реализуется только типами этого пакета: Product и ItemSnapshot.
type ProductRef interface {
	Snapshot() ItemSnapshot
	sealed()
}

// ItemSnapshot — минимальный снимок товара для корзины.
type ItemSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// Snapshot возвращает копию снимка.
func (s ItemSnapshot) Snapshot() ItemSnapshot { return s }

func (ItemSnapshot) sealed() {}

// LineItem описывает позицию корзины.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// PriceCents возвращает цену позиции в центах.
func (li LineItem) PriceCents() int64 {
	return ToCents(li.Price)
}

// SellerInfo описывает продавца, разместившего пользовательский товар.
type SellerInfo struct {
	SellerID  string    `json:"sellerId"`
	AddedDate time.Time `json:"addedDate"`
}

// Product описывает товар каталога: встроенный либо добавленный пользователем.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Image           string  `json:"image,omitempty"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	Discount        int     `json:"discount"`
	IsUserGenerated bool    `json:"isUserGenerated,omitempty"`

	// Поля ниже заполнены только у пользовательских товаров.
	Description       string      `json:"description,omitempty"`
	QuantityAvailable int         `json:"quantity,omitempty"`
	DeliveryMethod    string      `json:"deliveryMethod,omitempty"`
	DateAdded         *time.Time  `json:"dateAdded,omitempty"`
	SellerInfo        *SellerInfo `json:"sellerInfo,omitempty"`

	Specifications *Specifications `json:"specifications,omitempty"`
}

// Specifications — характеристики пользовательского товара из формы добавления.
type Specifications struct {
	Quantity int    `json:"quantity"`
	Delivery string `json:"delivery"`
}

// Snapshot снимает копию товара для корзины; последующие изменения каталога её не затрагивают.
func (p Product) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

func (Product) sealed() {}

// OriginalPrice возвращает зачёркнутую цену до скидки, округлённую до целого.
func (p Product) OriginalPrice() float64 {
	return math.Round(p.Price * (1 + float64(p.Discount)/100))
}

// SellerProfile — единственная запись профиля продавца на устройстве.
type SellerProfile struct {
	StoreName    string    `json:"storeName"`
	BusinessInfo string    `json:"businessInfo"`
	Category     string    `json:"category"`
	JoinedDate   time.Time `json:"joinedDate"`
}

// ThemeMode описывает выбранный пользователем режим отображения.
type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// ErrInvalidThemeMode возвращается для значений вне light, dark и system.
var ErrInvalidThemeMode = errors.New("invalid theme mode")

// ParseThemeMode проверяет строковое значение режима.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(s); m {
	case ThemeModeLight, ThemeModeDark, ThemeModeSystem:
		return m, nil
	default:
		return "", ErrInvalidThemeMode
	}
}

// ColorScheme — системная цветовая схема хоста.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// Theme — набор цветовых токенов интерфейса.
type Theme struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Card          string `json:"card"`
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	TextTertiary  string `json:"textTertiary"`
	Border        string `json:"border"`
	Danger        string `json:"danger"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Info          string `json:"info"`
	Shadow        string `json:"shadow"`
	StatusBar     string `json:"statusBar"`
}

// Верхние границы количества позиции и цены товара. При них сумма корзины
// в центах не выходит за пределы int64.
const (
	MaxQuantity = 9999
	MaxPrice    = 1_000_000
)

// IsValidPrice проверяет, что цена лежит в диапазоне (0, MaxPrice].
func IsValidPrice(v float64) bool {
	return v > 0 && v <= MaxPrice
}

// ToCents переводит денежную сумму в центы с округлением.
func ToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FromCents переводит центы в денежную сумму.
func FromCents(c int64) float64 {
	return float64(c) / 100
}

// ProductDraft — данные формы добавления товара.
type ProductDraft struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Category       string  `json:"category"`
	Image          string  `json:"image,omitempty"`
	DeliveryMethod string  `json:"deliveryMethod"`
}
