package seeders

import "office-inventory/internal/dto"

var demoEquipment = []dto.CreateEquipmentDTO{
	{InventoryType: "PC", SerialNumber: "DL5440-0001", ComputerType: "laptop", Brand: "Dell", Model: "Latitude 5440", Processor: "Intel Core i5-1345U", RAM: "16GB", Storage: "512GB SSD", OperatingSystem: "Windows 11 Pro", PurchaseDate: "2024-01-15"},
	{InventoryType: "PC", SerialNumber: "HP800-0002", ComputerType: "desktop", Brand: "HP", Model: "EliteDesk 800 G9", Processor: "Intel Core i7-12700", RAM: "32GB", Storage: "1TB SSD", OperatingSystem: "Windows 11 Pro", PurchaseDate: "2023-11-02"},
	{InventoryType: "PC", SerialNumber: "LNP360-0003", ComputerType: "workstation", Brand: "Lenovo", Model: "ThinkStation P360", Processor: "Intel Core i9-12900", RAM: "64GB", Storage: "2TB SSD", OperatingSystem: "Ubuntu 22.04"},
	{InventoryType: "CPU", SerialNumber: "OPT7010-0004", Brand: "Dell", Model: "OptiPlex 7010", Processor: "Intel Core i5-13500", RAM: "16GB", Storage: "256GB SSD"},
	{InventoryType: "Printer", SerialNumber: "HPM404-0005", Brand: "HP", Model: "LaserJet Pro M404dn", PurchaseDate: "2022-06-20"},
	{InventoryType: "Printer", SerialNumber: "CNMF445-0006", Brand: "Canon", Model: "i-SENSYS MF445dw"},
	{InventoryType: "UPS", SerialNumber: "APC1500-0007", Brand: "APC", Model: "Smart-UPS 1500", Remarks: "Server room"},
}
