package trip

import "github.com/evelynko/carnet/internal/domain"

// SeedEssentials returns the initial pre-trip checklist.
func SeedEssentials() []domain.EssentialItem {
	return []domain.EssentialItem{
		{ID: "e1", Text: "換錢 (EUR)"},
		{ID: "e2", Text: "確認天氣預報"},
		{ID: "e3", Text: "辦旅平不便險"},
		{ID: "e4", Text: "了解退稅流程"},
		{ID: "e5", Text: "準備轉換插座"},
		{ID: "e6", Text: "啟動 Esim/漫遊"},
	}
}

// SeedItinerary returns the initial 13-day France itinerary. It satisfies
// the store invariants: day numbers match position and dates are unique.
func SeedItinerary() []domain.DayPlan {
	return []domain.DayPlan{
		{
			ID: "d1", Day: 1, Date: "5/22", Title: "啟程法國：台北 -> 莉莉家",
			Description: "5/21 23:30 從桃園機場出發，5/22 早上抵達巴黎，銜接 TGV 直接前往 La Rochelle。",
			Spots: []domain.Spot{
				{ID: "s1-1", Name: "桃園國際機場 (TPE)", Feature: "23:30 起飛 (長榮 BR87)"},
				{ID: "s1-2", Name: "巴黎 CDG 航站", Feature: "07:35 抵達，預計 10:00 完成通關領行李"},
				{ID: "s1-3", Name: "莉莉家 (La Rochelle)", Feature: "預計 14:00 抵達莉莉家，下午慢活休息", MapURL: "https://www.google.com/maps/search/?api=1&query=La+Rochelle"},
			},
			Transports: []domain.Transport{
				{ID: "t1-1", Mode: domain.ModeFlight, Details: "BR87 (TPE 23:30 -> CDG 07:35)", Duration: "14h 05m", Price: "NT$ 45,000", BookingURL: "https://www.evaair.com"},
				{ID: "t1-2", Mode: domain.ModeTrain, Details: "TGV (CDG 10:15 -> La Rochelle 13:45)", Duration: "3h 30m", Price: "€60 - €120", BookingURL: "https://www.sncf-connect.com"},
			},
			StartTime: "23:30 (5/21)", Budget: "約 €150", Precautions: []string{"注意 TGV 時間"},
		},
		{
			ID: "d2", Day: 2, Date: "5/23", Title: "莉莉家：La Rochelle 悠閒時光",
			Description: "全日待在 La Rochelle。海鮮午餐與舊港漫步。",
			Spots: []domain.Spot{
				{ID: "s2-1", Name: "Vieux Port 舊港", Feature: "與莉莉一起散步看夕陽"},
			},
			Transports: []domain.Transport{
				{ID: "t2-1", Mode: domain.ModeWalk, Details: "慢活移動", Duration: "全日", Price: "€0"},
			},
			StartTime: "09:00", Budget: "約 €50", Precautions: []string{"注意海邊防曬"},
		},
		{
			ID: "d3", Day: 3, Date: "5/24", Title: "沙丘奇景：阿卡雄比拉沙丘",
			Description: "今日從莉莉家提早出發，先前往阿卡雄看歐洲最高的比拉沙丘，晚上再回波爾多入住。",
			Spots: []domain.Spot{
				{ID: "s3-1", Name: "比拉沙丘 (Dune du Pilat)", Feature: "爬上沙丘眺望大西洋"},
				{ID: "s3-2", Name: "波爾多市區", Feature: "18:00 前進飯店 Check-in"},
			},
			Transports: []domain.Transport{
				{ID: "t3-1", Mode: domain.ModeTrain, Details: "Intercités + TER (LR 08:30 -> Arcachon 12:00)", Duration: "3h 30m", Price: "€35", BookingURL: "https://www.sncf-connect.com"},
			},
			StartTime: "08:30", Budget: "約 €80", Precautions: []string{"沙丘風大注意帽子"},
		},
		{
			ID: "d4", Day: 4, Date: "5/25", Title: "波爾多慢遊 -> 飛往巴塞爾",
			Description: "早上在波爾多逛水鏡廣場，下午準時前往機場飛往巴塞爾與常郁會合。",
			Spots: []domain.Spot{
				{ID: "s4-1", Name: "波爾多水鏡廣場", Feature: "10:00 散步拍照"},
				{ID: "s4-2", Name: "波爾多機場 (BOD)", Feature: "13:55 抵達機場"},
			},
			Transports: []domain.Transport{
				{ID: "t4-1", Mode: domain.ModeFlight, Details: "EasyJet (BOD 16:55 -> BSL 18:25)", Duration: "1h 30m", Price: "€75", BookingURL: "https://www.easyjet.com"},
			},
			StartTime: "09:30", Budget: "約 €100", Precautions: []string{"嚴格遵守行李限制"},
		},
		{
			ID: "d5", Day: 5, Date: "5/26", Title: "常郁家：德法瑞士邊境生活",
			Description: "在 10 Rue du Chalet 享受阿爾薩斯鄉間寧靜。",
			Spots: []domain.Spot{
				{ID: "s5-1", Name: "Kœstlach 莊園", Feature: "10 Rue du Chalet, 68480"},
			},
			StartTime: "自由", Budget: "€0", Precautions: []string{"享受寧靜"},
		},
		{
			ID: "d6", Day: 6, Date: "5/27", Title: "常郁家：三國交界深度遊",
			Description: "拜訪巴塞爾市區與鄰近德法小鎮。",
			Spots: []domain.Spot{
				{ID: "s6-1", Name: "Basel 市中心", Feature: "跨越萊茵河、參觀巴塞爾大教堂"},
			},
			StartTime: "10:00", Budget: "約 €60", Precautions: []string{"注意瑞士物價"},
		},
		{
			ID: "d7", Day: 7, Date: "5/28", Title: "常郁家最後一日：準備回巴黎",
			Description: "採買阿爾薩斯葡萄酒與在地食材，準備明日移動。",
			Spots: []domain.Spot{
				{ID: "s7-1", Name: "科瑪 Colmar", Feature: "如童話般的小鎮漫步"},
			},
			StartTime: "10:00", Budget: "隨意", Precautions: []string{"檢查行李重量"},
		},
		{
			ID: "d8", Day: 8, Date: "5/29", Title: "返回花都巴黎",
			Description: "搭乘 TGV Lyria 高鐵從瑞士巴塞爾返回巴黎里昂車站 (Gare de Lyon)。",
			Spots: []domain.Spot{
				{ID: "s8-1", Name: "巴黎市區", Feature: "抵達後入住飯店，享受巴黎首晚"},
			},
			Transports: []domain.Transport{
				{ID: "t8-1", Mode: domain.ModeTrain, Details: "TGV Lyria (Basel SBB -> Paris Gare de Lyon)", Duration: "3h 04m", Price: "€95 - €160", BookingURL: "https://www.sncf-connect.com"},
			},
			StartTime: "10:00", Budget: "約 €150", Precautions: []string{"提早抵達火車站"},
		},
		{
			ID: "d9", Day: 9, Date: "5/30", Title: "巴黎：藝術洗禮",
			Description: "羅浮宮、杜樂麗花園、協和廣場。",
			Spots: []domain.Spot{
				{ID: "s9-1", Name: "羅浮宮", Feature: "預約 09:30 入場"},
			},
			StartTime: "09:00", Budget: "約 €80", Precautions: []string{"注意財物安全"},
		},
		{
			ID: "d10", Day: 10, Date: "5/31", Title: "巴黎：法式經典浪漫",
			Description: "巴黎鐵塔、凱旋門、香榭麗舍大道。",
			Spots: []domain.Spot{
				{ID: "s10-1", Name: "戰神廣場", Feature: "野餐看鐵塔亮燈"},
			},
			StartTime: "10:00", Budget: "約 €70", Precautions: []string{"野餐注意保暖"},
		},
		{
			ID: "d11", Day: 11, Date: "6/1", Title: "巴黎：精品購物日",
			Description: "拉法葉百貨或 La Vallée Village。",
			Spots: []domain.Spot{
				{ID: "s11-1", Name: "La Vallée Village", Feature: "折扣村補貨日"},
			},
			Transports: []domain.Transport{
				{ID: "t11-1", Mode: domain.ModeTrain, Details: "RER A", Duration: "45m", Price: "€5"},
			},
			StartTime: "09:30", Budget: "隨意", Precautions: []string{"注意退稅時限"},
		},
		{
			ID: "d12", Day: 12, Date: "6/2", Title: "巴黎最後慢步",
			Description: "蒙馬特、聖心堂，俯瞰最後的巴黎全景。",
			Spots: []domain.Spot{
				{ID: "s12-1", Name: "聖心堂", Feature: "階梯上看夕陽"},
			},
			StartTime: "10:00", Budget: "約 €60", Precautions: []string{"注意蒙馬特區安全"},
		},
		{
			ID: "d13", Day: 13, Date: "6/3", Title: "再見法國：平安歸家",
			Description: "整理行李，前往 CDG 辦理退稅手續。",
			Spots: []domain.Spot{
				{ID: "s13-1", Name: "CDG 航站 2E", Feature: "19:30 辦理退稅"},
			},
			Transports: []domain.Transport{
				{ID: "t13-1", Mode: domain.ModeFlight, Details: "BR88 (CDG 23:30 -> TPE 17:50+1)", Duration: "12h 20m", Price: "歸國班機", BookingURL: "https://www.evaair.com"},
			},
			StartTime: "12:00", Budget: "約 €40", Precautions: []string{"預留退稅時間"},
		},
	}
}
