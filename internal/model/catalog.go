package model

// InstallModels lists the selectable models per install category.
var InstallModels = map[ProductCategory][]string{
	CategoryModem: {"MV1", "MV1 BASE", "MV2", "MV2+", "MARAKELE"},
	CategoryNIU:   {"WO", "mampay", "Teleste"},
	CategoryTVBox: {"apollo box", "EOS TV box", "apollo box base"},
}

var OtherProductNames = []string{
	"Pods", "MV2+", "MV2", "MV1", "MV1 BASE", "MARAKELE", "TV BOX V2",
	"CABLE KIT EOS", "REMOTE EOS", "WO NIU", "NIU TYCO", "NIU MAMEPAY",
	"NIU TELESTE", "APOLLO", "APOLLO CABLE KIT", "APOLLO REMOTE",
	"APOLLO REMOTE BASE", "WIFI PWL", "PWL", "HDDC", "HDDB",
	"SWITCH", "LTE MODEM", "AP", "STEKKERBLOK",
}

func IsInstallModel(category ProductCategory, name string) bool {
	for _, m := range InstallModels[category] {
		if m == name {
			return true
		}
	}
	return false
}

func IsOtherProduct(name string) bool {
	for _, p := range OtherProductNames {
		if p == name {
			return true
		}
	}
	return false
}
