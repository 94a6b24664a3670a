package catalog

import "github.com/mmeshcher/shopstate/internal/model"

var builtin = []model.Product{
	{ID: "1", Name: "iPhone 14 Pro Max", Price: 799, Category: "Electronic", Rating: 4.8, Reviews: 234, Discount: 10},
	{ID: "2", Name: "PlayStation 5", Price: 399, Category: "Electronic", Rating: 4.9, Reviews: 567, Discount: 0},
	{ID: "3", Name: "Samsung Galaxy Watch", Price: 299, Category: "Electronic", Rating: 4.6, Reviews: 123, Discount: 15},
	{ID: "4", Name: "MacBook Air M2", Price: 1199, Category: "Electronic", Rating: 4.7, Reviews: 89, Discount: 8},
	{ID: "5", Name: "AirPods Pro", Price: 249, Category: "Electronic", Rating: 4.5, Reviews: 456, Discount: 20},
	{ID: "6", Name: "iPad Pro 12.9\"", Price: 899, Category: "Electronic", Rating: 4.8, Reviews: 178, Discount: 12},
	{ID: "7", Name: "Designer Sneakers", Price: 150, Category: "Fashion", Rating: 4.4, Reviews: 78, Discount: 25},
	{ID: "8", Name: "Leather Jacket", Price: 89, Category: "Fashion", Rating: 4.6, Reviews: 145, Discount: 0},
	{ID: "9", Name: "Summer Dress", Price: 45, Category: "Fashion", Rating: 4.3, Reviews: 67, Discount: 30},
	{ID: "10", Name: "Denim Jeans", Price: 65, Category: "Fashion", Rating: 4.5, Reviews: 234, Discount: 15},
	{ID: "11", Name: "Silk Scarf", Price: 35, Category: "Fashion", Rating: 4.2, Reviews: 45, Discount: 0},
	{ID: "12", Name: "Winter Coat", Price: 120, Category: "Fashion", Rating: 4.7, Reviews: 89, Discount: 18},
	{ID: "13", Name: "Skincare Set", Price: 75, Category: "Beauty", Rating: 4.8, Reviews: 189, Discount: 22},
	{ID: "14", Name: "Makeup Palette", Price: 55, Category: "Beauty", Rating: 4.7, Reviews: 156, Discount: 0},
	{ID: "15", Name: "Hair Serum", Price: 25, Category: "Beauty", Rating: 4.4, Reviews: 78, Discount: 35},
	{ID: "16", Name: "Face Mask Set", Price: 30, Category: "Beauty", Rating: 4.6, Reviews: 123, Discount: 20},
	{ID: "17", Name: "Perfume Collection", Price: 120, Category: "Beauty", Rating: 4.5, Reviews: 89, Discount: 10},
	{ID: "18", Name: "Lip Gloss Set", Price: 40, Category: "Beauty", Rating: 4.3, Reviews: 145, Discount: 15},
	{ID: "19", Name: "Vitamin C Supplement", Price: 25, Category: "Health", Rating: 4.6, Reviews: 234, Discount: 0},
	{ID: "20", Name: "Protein Powder", Price: 60, Category: "Health", Rating: 4.7, Reviews: 156, Discount: 20},
	{ID: "21", Name: "First Aid Kit", Price: 35, Category: "Health", Rating: 4.4, Reviews: 89, Discount: 15},
	{ID: "22", Name: "Blood Pressure Monitor", Price: 85, Category: "Health", Rating: 4.8, Reviews: 67, Discount: 12},
	{ID: "23", Name: "Basketball", Price: 40, Category: "Sports", Rating: 4.5, Reviews: 123, Discount: 0},
	{ID: "24", Name: "Tennis Racket", Price: 120, Category: "Sports", Rating: 4.7, Reviews: 89, Discount: 18},
	{ID: "25", Name: "Soccer Ball", Price: 30, Category: "Sports", Rating: 4.6, Reviews: 234, Discount: 25},
	{ID: "26", Name: "Golf Club Set", Price: 350, Category: "Sports", Rating: 4.8, Reviews: 45, Discount: 10},
	{ID: "27", Name: "Yoga Mat", Price: 25, Category: "Fitness", Rating: 4.4, Reviews: 178, Discount: 20},
	{ID: "28", Name: "Dumbbells Set", Price: 80, Category: "Fitness", Rating: 4.6, Reviews: 123, Discount: 15},
	{ID: "29", Name: "Resistance Bands", Price: 20, Category: "Fitness", Rating: 4.3, Reviews: 156, Discount: 30},
	{ID: "30", Name: "Exercise Bike", Price: 299, Category: "Fitness", Rating: 4.7, Reviews: 67, Discount: 12},
	{ID: "31", Name: "Coffee Maker", Price: 89, Category: "Appliance", Rating: 4.5, Reviews: 234, Discount: 0},
	{ID: "32", Name: "Air Fryer", Price: 120, Category: "Appliance", Rating: 4.8, Reviews: 189, Discount: 22},
	{ID: "33", Name: "Blender", Price: 65, Category: "Appliance", Rating: 4.4, Reviews: 145, Discount: 18},
	{ID: "34", Name: "Microwave Oven", Price: 180, Category: "Appliance", Rating: 4.6, Reviews: 78, Discount: 15},
	{ID: "35", Name: "Diamond Ring", Price: 899, Category: "Jewelry", Rating: 4.9, Reviews: 45, Discount: 0},
	{ID: "36", Name: "Gold Necklace", Price: 299, Category: "Jewelry", Rating: 4.7, Reviews: 89, Discount: 10},
	{ID: "37", Name: "Silver Bracelet", Price: 120, Category: "Jewelry", Rating: 4.5, Reviews: 123, Discount: 25},
	{ID: "38", Name: "Pearl Earrings", Price: 199, Category: "Jewelry", Rating: 4.6, Reviews: 67, Discount: 15},
	{ID: "39", Name: "Ergonomic Chair", Price: 230, Category: "Furniture", Rating: 4.7, Reviews: 89, Discount: 15},
	{ID: "40", Name: "Coffee Table", Price: 180, Category: "Furniture", Rating: 4.6, Reviews: 156, Discount: 20},
	{ID: "41", Name: "Bookshelf", Price: 150, Category: "Furniture", Rating: 4.4, Reviews: 234, Discount: 18},
	{ID: "42", Name: "Dining Set", Price: 450, Category: "Furniture", Rating: 4.8, Reviews: 67, Discount: 12},
	{ID: "43", Name: "Gaming Headset", Price: 89, Category: "Gaming", Rating: 4.6, Reviews: 234, Discount: 20},
	{ID: "44", Name: "Mechanical Keyboard", Price: 120, Category: "Gaming", Rating: 4.7, Reviews: 145, Discount: 15},
	{ID: "45", Name: "Gaming Mouse", Price: 65, Category: "Gaming", Rating: 4.5, Reviews: 189, Discount: 25},
	{ID: "46", Name: "Gaming Chair", Price: 299, Category: "Gaming", Rating: 4.8, Reviews: 78, Discount: 10},
}

// Builtin возвращает копию встроенного каталога.
func Builtin() []model.Product {
	res := make([]model.Product, len(builtin))
	copy(res, builtin)
	return res
}
