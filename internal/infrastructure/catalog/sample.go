package catalog

import (
	"context"

	"github.com/laptopfinder/backend/internal/domain"
)

// SampleSource serves a built-in demonstration catalog (prices in USD).
type SampleSource struct{}

// Load returns a fresh copy of the sample catalog
func (SampleSource) Load(ctx context.Context) ([]domain.Product, error) {
	return SampleProducts(), nil
}

func str(s string) *string { return &s }
func num(f float64) *float64 { return &f }

// SampleProducts returns the demonstration catalog
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:               "1",
			Brand:            "Dell",
			Name:             "XPS 13",
			Price:            1299,
			Processor:        "Intel Core i7-1165G7",
			RAMGB:            16,
			StorageGB:        512,
			Display:          str("13.4-inch FHD+ (1920 x 1200)"),
			BatteryLifeHours: num(12),
			WeightKG:         num(1.2),
			OS:               str("Windows 11"),
		},
		{
			ID:               "2",
			Brand:            "Apple",
			Name:             "MacBook Air M2",
			Price:            1199,
			Processor:        "Apple M2",
			RAMGB:            8,
			StorageGB:        256,
			GPU:              str("Apple M2 GPU"),
			Display:          str("13.6-inch Liquid Retina"),
			BatteryLifeHours: num(18),
			WeightKG:         num(1.24),
			OS:               str("macOS"),
		},
		{
			ID:               "3",
			Brand:            "HP",
			Name:             "Spectre x360",
			Price:            1399,
			Processor:        "Intel Core i7-1255U",
			RAMGB:            16,
			StorageGB:        1000,
			GPU:              str("Intel Iris Xe"),
			Display:          str("14-inch 3K2K OLED"),
			BatteryLifeHours: num(10),
			WeightKG:         num(1.36),
			OS:               str("Windows 11"),
		},
		{
			ID:               "4",
			Brand:            "Lenovo",
			Name:             "ThinkPad X1 Carbon",
			Price:            1499,
			Processor:        "Intel Core i7-1270P",
			RAMGB:            16,
			StorageGB:        512,
			Display:          str("14-inch WUXGA IPS"),
			BatteryLifeHours: num(14),
			WeightKG:         num(1.12),
			OS:               str("Windows 11"),
		},
		{
			ID:               "5",
			Brand:            "Asus",
			Name:             "ROG Zephyrus G14",
			Price:            1649,
			Processor:        "AMD Ryzen 9 6900HS",
			RAMGB:            16,
			StorageGB:        1000,
			GPU:              str("NVIDIA RTX 3060"),
			Display:          str("14-inch QHD 120Hz"),
			BatteryLifeHours: num(8),
			WeightKG:         num(1.6),
			OS:               str("Windows 11"),
		},
		{
			ID:               "6",
			Brand:            "Acer",
			Name:             "Swift 5",
			Price:            1099,
			Processor:        "Intel Core i7-1165G7",
			RAMGB:            16,
			StorageGB:        512,
			GPU:              str("Intel Iris Xe Graphics"),
			Display:          str("14-inch FHD IPS"),
			BatteryLifeHours: num(10),
			WeightKG:         num(1.05),
			OS:               str("Windows 11"),
		},
		{
			ID:               "7",
			Brand:            "MSI",
			Name:             "GS66 Stealth",
			Price:            1899,
			Processor:        "Intel Core i9-12900H",
			RAMGB:            32,
			StorageGB:        1000,
			GPU:              str("NVIDIA RTX 3070"),
			Display:          str("15.6-inch FHD 360Hz"),
			BatteryLifeHours: num(6),
			WeightKG:         num(2.1),
			OS:               str("Windows 11"),
		},
		{
			ID:               "8",
			Brand:            "Microsoft",
			Name:             "Surface Laptop 4",
			Price:            1299,
			Processor:        "AMD Ryzen 5 4680U",
			RAMGB:            8,
			StorageGB:        256,
			GPU:              str("AMD Radeon Graphics"),
			Display:          str("13.5-inch PixelSense"),
			BatteryLifeHours: num(19),
			WeightKG:         num(1.3),
			OS:               str("Windows 11"),
		},
		{
			ID:               "9",
			Brand:            "Razer",
			Name:             "Blade 15",
			Price:            2199,
			Processor:        "Intel Core i7-12800H",
			RAMGB:            16,
			StorageGB:        1000,
			GPU:              str("NVIDIA RTX 3080"),
			Display:          str("15.6-inch QHD 240Hz"),
			BatteryLifeHours: num(5),
			WeightKG:         num(2.0),
			OS:               str("Windows 11"),
		},
		{
			ID:               "10",
			Brand:            "LG",
			Name:             "Gram 17",
			Price:            1599,
			Processor:        "Intel Core i7-1260P",
			RAMGB:            16,
			StorageGB:        512,
			GPU:              str("Intel Iris Xe Graphics"),
			Display:          str("17-inch WQXGA"),
			BatteryLifeHours: num(20),
			WeightKG:         num(1.35),
			OS:               str("Windows 11"),
		},
	}
}
