package seed

import "time"

type localeText struct {
	Name        string
	Description string
	Features    []string
}

type productSeed struct {
	Slug           string
	Standard       string
	Certifications []string
	Upper          string
	Outsole        string
	ToeCap         string
	Midsole        string
	Lining         string
	Style          string
	Industries     []string
	MOQ            string
	PriceRange     string
	Images         []string
	IsHot          bool
	IsNew          bool
	EN             localeText
	ZH             localeText
}

type updateText struct {
	Title   string
	Excerpt string
	Body    string
}

type updateSeed struct {
	Category    string
	Author      string
	PublishedOn time.Time
	MediaType   string
	VideoURL    string
	Image       string
	EN          updateText
	ZH          updateText
}

var catalog = []productSeed{
	{
		Slug:           "sg-2801",
		Standard:       "S3",
		Certifications: []string{"SRC", "HRO"},
		Upper:          "Full-grain leather",
		Outsole:        "Rubber",
		ToeCap:         "Steel",
		Midsole:        "Steel plate",
		Lining:         "Breathable mesh",
		Style:          "Mid Cut",
		Industries:     []string{"Construction", "Mining"},
		MOQ:            "500 pairs",
		PriceRange:     "$18 - $24",
		Images:         []string{"/uploads/sg-2801-1.jpg", "/uploads/sg-2801-2.jpg"},
		IsHot:          true,
		EN: localeText{
			Name:        "SteelGuard 2801",
			Description: "Heavy-duty mid-cut work boot with steel toe and midsole, built for construction and mining sites.",
			Features:    []string{"Anti-smash steel toe", "Puncture-resistant midsole", "Slip-resistant SRC outsole", "Heat-resistant to 300°C"},
		},
		ZH: localeText{
			Name:        "钢卫 2801",
			Description: "重型中帮工作靴，钢包头加钢中底，专为建筑和矿山工地设计。",
			Features:    []string{"防砸钢包头", "防刺穿中底", "SRC 防滑大底", "耐高温 300°C"},
		},
	},
	{
		Slug:           "al-1102",
		Standard:       "S1P",
		Certifications: []string{"SRC", "ESD"},
		Upper:          "Microfiber",
		Outsole:        "PU/PU",
		ToeCap:         "Aluminum",
		Midsole:        "Kevlar",
		Lining:         "Moisture-wicking fabric",
		Style:          "Low Cut",
		Industries:     []string{"Logistics", "Executive"},
		MOQ:            "800 pairs",
		PriceRange:     "$12 - $16",
		Images:         []string{"/uploads/al-1102-1.jpg"},
		IsNew:          true,
		EN: localeText{
			Name:        "AeroLite 1102",
			Description: "Lightweight low-cut safety shoe with aluminum toe and Kevlar midsole for warehouse and logistics work.",
			Features:    []string{"30% lighter aluminum toe", "ESD protection", "Flexible Kevlar midsole", "Shock-absorbing heel"},
		},
		ZH: localeText{
			Name:        "轻风 1102",
			Description: "轻量低帮安全鞋，铝包头配凯夫拉中底，适合仓储物流作业。",
			Features:    []string{"减重 30% 铝包头", "防静电 ESD", "柔性凯夫拉中底", "减震后跟"},
		},
	},
	{
		Slug:           "hb-3305",
		Standard:       "S3",
		Certifications: []string{"SRC", "WR", "CI"},
		Upper:          "Nubuck leather",
		Outsole:        "Rubber",
		ToeCap:         "Composite",
		Midsole:        "Composite plate",
		Lining:         "Thinsulate",
		Style:          "High Boot",
		Industries:     []string{"Oil & Gas", "Construction"},
		MOQ:            "300 pairs",
		PriceRange:     "$28 - $35",
		Images:         []string{"/uploads/hb-3305-1.jpg", "/uploads/hb-3305-2.jpg", "/uploads/hb-3305-3.jpg"},
		IsHot:          true,
		EN: localeText{
			Name:        "HighBase 3305",
			Description: "Waterproof high boot with composite protection and cold insulation for oilfield winters.",
			Features:    []string{"Waterproof nubuck upper", "Metal-free composite protection", "Cold insulation to -30°C", "Oil-resistant outsole"},
		},
		ZH: localeText{
			Name:        "高基 3305",
			Description: "防水高筒靴，复合材料防护加防寒内衬，适应油田冬季作业。",
			Features:    []string{"防水磨砂皮鞋面", "无金属复合防护", "耐寒 -30°C", "耐油大底"},
		},
	},
	{
		Slug:           "fd-2210",
		Standard:       "S2",
		Certifications: []string{"SRC", "WR"},
		Upper:          "White microfiber",
		Outsole:        "PU",
		ToeCap:         "Steel",
		Midsole:        "",
		Lining:         "Antibacterial fabric",
		Style:          "Low Cut",
		Industries:     []string{"Food"},
		MOQ:            "1000 pairs",
		PriceRange:     "$10 - $13",
		Images:         []string{"/uploads/fd-2210-1.jpg"},
		EN: localeText{
			Name:        "FoodSafe 2210",
			Description: "Washable white safety shoe for food processing plants, with water-repellent upper.",
			Features:    []string{"Easy-clean white upper", "Water repellent", "Antibacterial lining", "SRC slip resistance"},
		},
		ZH: localeText{
			Name:        "食安 2210",
			Description: "食品加工厂用白色安全鞋，鞋面拒水，便于清洗。",
			Features:    []string{"易清洁白色鞋面", "拒水处理", "抗菌内衬", "SRC 防滑"},
		},
	},
	{
		Slug:           "ex-4501",
		Standard:       "S1",
		Certifications: []string{"ESD"},
		Upper:          "Smooth leather",
		Outsole:        "PU/TPU",
		ToeCap:         "Composite",
		Midsole:        "",
		Lining:         "Leather",
		Style:          "Sporty",
		Industries:     []string{"Executive", "Logistics"},
		MOQ:            "600 pairs",
		PriceRange:     "$15 - $20",
		Images:         []string{"/uploads/ex-4501-1.jpg", "/uploads/ex-4501-2.jpg"},
		IsNew:          true,
		EN: localeText{
			Name:        "ExecSport 4501",
			Description: "Sneaker-style safety shoe that passes for office wear, with hidden composite toe.",
			Features:    []string{"Sneaker styling", "Hidden composite toe", "ESD safe", "Cushioned insole"},
		},
		ZH: localeText{
			Name:        "行政运动 4501",
			Description: "运动鞋外观的安全鞋，隐形复合包头，适合办公场合。",
			Features:    []string{"运动鞋外观", "隐形复合包头", "防静电", "缓震鞋垫"},
		},
	},
	{
		Slug:           "ch-5120",
		Standard:       "S2",
		Certifications: []string{"SRC", "HRO", "CI"},
		Upper:          "Rubber-coated leather",
		Outsole:        "Nitrile rubber",
		ToeCap:         "Steel",
		Midsole:        "",
		Lining:         "Chemical-resistant fabric",
		Style:          "High Boot",
		Industries:     []string{"Chemical", "Oil & Gas"},
		MOQ:            "400 pairs",
		PriceRange:     "$22 - $28",
		Images:         []string{"/uploads/ch-5120-1.jpg"},
		EN: localeText{
			Name:        "ChemShield 5120",
			Description: "Acid and alkali resistant boot for chemical plants, with nitrile rubber outsole.",
			Features:    []string{"Acid/alkali resistant", "Nitrile rubber outsole", "Heat resistant HRO", "Quick-release buckle"},
		},
		ZH: localeText{
			Name:        "化盾 5120",
			Description: "化工厂用耐酸碱安全靴，丁腈橡胶大底。",
			Features:    []string{"耐酸碱", "丁腈橡胶大底", "耐高温 HRO", "快拆扣带"},
		},
	},
	{
		Slug:           "sd-1809",
		Standard:       "OB",
		Certifications: []string{"SRC"},
		Upper:          "Perforated microfiber",
		Outsole:        "EVA/Rubber",
		ToeCap:         "",
		Midsole:        "",
		Lining:         "Mesh",
		Style:          "Sandal",
		Industries:     []string{"Logistics", "Food"},
		MOQ:            "1200 pairs",
		PriceRange:     "$8 - $11",
		Images:         []string{"/uploads/sd-1809-1.jpg"},
		EN: localeText{
			Name:        "SummerDuty 1809",
			Description: "Ventilated occupational sandal for light indoor duty in hot seasons.",
			Features:    []string{"Ventilated design", "Lightweight EVA sole", "SRC slip resistance"},
		},
		ZH: localeText{
			Name:        "夏勤 1809",
			Description: "透气职业凉鞋，适合炎热季节的轻型室内作业。",
			Features:    []string{"透气设计", "轻量 EVA 鞋底", "SRC 防滑"},
		},
	},
	{
		Slug:           "wt-6003",
		Standard:       "S3",
		Certifications: []string{"SRC", "WR", "CI", "HI"},
		Upper:          "Waxed full-grain leather",
		Outsole:        "Dual-density rubber",
		ToeCap:         "Steel",
		Midsole:        "Steel plate",
		Lining:         "Wool blend",
		Style:          "High Boot",
		Industries:     []string{"Construction", "Mining", "Oil & Gas"},
		MOQ:            "300 pairs",
		PriceRange:     "$30 - $38",
		Images:         []string{"/uploads/wt-6003-1.jpg", "/uploads/wt-6003-2.jpg"},
		IsHot:          true,
		IsNew:          true,
		EN: localeText{
			Name:        "WinterTough 6003",
			Description: "Insulated winter work boot rated for both cold and heat contact, full S3 protection.",
			Features:    []string{"Wool-blend insulation", "Heat and cold insulated", "Waxed waterproof leather", "Full S3 protection"},
		},
		ZH: localeText{
			Name:        "冬坚 6003",
			Description: "保暖冬季工作靴，耐寒耐热接触，全面 S3 防护。",
			Features:    []string{"羊毛混纺保暖层", "隔热防寒", "打蜡防水皮革", "全面 S3 防护"},
		},
	},
}

var updates = []updateSeed{
	{
		Category:    "Factory",
		Author:      "Marketing Team",
		PublishedOn: seedDate,
		MediaType:   "article",
		Image:       "/uploads/news-line-upgrade.jpg",
		EN: updateText{
			Title:   "New automated stitching line commissioned",
			Excerpt: "Our third production line is now fully automated, lifting monthly capacity to 120,000 pairs.",
			Body:    "The new line combines automated stitching and direct-injection soling, cutting lead times for large OEM orders by roughly two weeks.",
		},
		ZH: updateText{
			Title:   "新自动化缝制生产线投产",
			Excerpt: "第三条生产线已全面自动化，月产能提升至 12 万双。",
			Body:    "新产线结合自动缝制与直接注塑成型工艺，大型 OEM 订单交期缩短约两周。",
		},
	},
	{
		Category:    "Certification",
		Author:      "QA Department",
		PublishedOn: seedDate.AddDate(0, 1, 3),
		MediaType:   "article",
		Image:       "/uploads/news-iso-audit.jpg",
		EN: updateText{
			Title:   "Annual ISO 20345 surveillance audit passed",
			Excerpt: "All certified product families passed this year's surveillance audit with zero non-conformities.",
			Body:    "The audit covered toe-cap impact, midsole penetration and slip-resistance testing across the S1 through S3 ranges.",
		},
		ZH: updateText{
			Title:   "通过 ISO 20345 年度监督审核",
			Excerpt: "所有认证产品系列零不符合项通过本年度监督审核。",
			Body:    "审核覆盖 S1 至 S3 全系列的包头抗冲击、中底抗刺穿及防滑性能测试。",
		},
	},
	{
		Category:    "Trade Show",
		Author:      "Sales Team",
		PublishedOn: seedDate.AddDate(0, 2, 10),
		MediaType:   "video",
		VideoURL:    "https://video.example.com/booth-tour-2024",
		EN: updateText{
			Title:   "Booth tour from the A+A trade fair",
			Excerpt: "A walkthrough of our booth and the new WinterTough line shown at this year's fair.",
			Body:    "The video covers the WinterTough 6003 launch and live slip-resistance demonstrations from the show floor.",
		},
		ZH: updateText{
			Title:   "A+A 展会展位巡礼",
			Excerpt: "本届展会展位及全新冬坚系列产品视频导览。",
			Body:    "视频内容包括冬坚 6003 发布及现场防滑性能演示。",
		},
	},
}
