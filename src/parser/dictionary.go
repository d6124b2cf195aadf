package parser

import (
	"strings"

	"github.com/username/galleon/backend/src/models"
)

// merchantEntry maps a canonical merchant name to its category and the
// alternate spellings that should resolve to it. Declaration order matters:
// the resolver and the suggestion list both scan entries in this order, and
// on overlapping alias matches the first declared one wins.
type merchantEntry struct {
	Name     string
	Category models.Category
	Aliases  []string
}

var merchantDict = []merchantEntry{
	// 餐饮
	{Name: "星巴克", Category: models.CategoryDining, Aliases: []string{"starbucks", "sbux"}},
	{Name: "麦当劳", Category: models.CategoryDining, Aliases: []string{"mcdonalds", "mcd", "金拱门"}},
	{Name: "肯德基", Category: models.CategoryDining, Aliases: []string{"kfc"}},
	{Name: "必胜客", Category: models.CategoryDining, Aliases: []string{"pizza hut", "pizzahut"}},
	{Name: "海底捞", Category: models.CategoryDining},
	{Name: "喜茶", Category: models.CategoryDining, Aliases: []string{"heytea"}},
	{Name: "奈雪", Category: models.CategoryDining, Aliases: []string{"nayuki", "奈雪的茶"}},
	{Name: "瑞幸", Category: models.CategoryDining, Aliases: []string{"luckin", "luckin coffee"}},
	{Name: "蜜雪冰城", Category: models.CategoryDining, Aliases: []string{"mixue"}},
	{Name: "茶百道", Category: models.CategoryDining},
	{Name: "一点点", Category: models.CategoryDining},
	{Name: "CoCo", Category: models.CategoryDining, Aliases: []string{"coco", "都可"}},
	{Name: "贡茶", Category: models.CategoryDining, Aliases: []string{"gongcha"}},
	{Name: "汉堡王", Category: models.CategoryDining, Aliases: []string{"burger king", "burgerking"}},
	{Name: "赛百味", Category: models.CategoryDining, Aliases: []string{"subway"}},
	{Name: "塔可钟", Category: models.CategoryDining, Aliases: []string{"taco bell", "tacobell"}},
	{Name: "真功夫", Category: models.CategoryDining},
	{Name: "永和大王", Category: models.CategoryDining},
	{Name: "老乡鸡", Category: models.CategoryDining},
	{Name: "西贝", Category: models.CategoryDining, Aliases: []string{"西贝莜面村"}},
	{Name: "外婆家", Category: models.CategoryDining},
	{Name: "绿茶", Category: models.CategoryDining, Aliases: []string{"绿茶餐厅"}},
	{Name: "太二", Category: models.CategoryDining, Aliases: []string{"太二酸菜鱼"}},
	{Name: "和府捞面", Category: models.CategoryDining},
	{Name: "味千拉面", Category: models.CategoryDining},
	{Name: "吉野家", Category: models.CategoryDining, Aliases: []string{"yoshinoya"}},
	{Name: "食其家", Category: models.CategoryDining, Aliases: []string{"sukiya"}},
	{Name: "萨莉亚", Category: models.CategoryDining, Aliases: []string{"saizeriya"}},
	{Name: "棒约翰", Category: models.CategoryDining, Aliases: []string{"papa johns", "papajohns"}},
	{Name: "达美乐", Category: models.CategoryDining, Aliases: []string{"dominos", "domino"}},
	{Name: "Costa", Category: models.CategoryDining, Aliases: []string{"costa coffee"}},
	{Name: "太平洋咖啡", Category: models.CategoryDining, Aliases: []string{"pacific coffee"}},
	{Name: "Tim Hortons", Category: models.CategoryDining, Aliases: []string{"tims", "tim hortons"}},
	{Name: "Manner", Category: models.CategoryDining, Aliases: []string{"manner coffee"}},
	{Name: "M Stand", Category: models.CategoryDining, Aliases: []string{"mstand"}},
	{Name: "Seesaw", Category: models.CategoryDining, Aliases: []string{"seesaw coffee"}},
	{Name: "%Arabica", Category: models.CategoryDining, Aliases: []string{"arabica", "百分号咖啡"}},
	{Name: "Blue Bottle", Category: models.CategoryDining, Aliases: []string{"blue bottle coffee", "蓝瓶咖啡"}},
	{Name: "Peets", Category: models.CategoryDining, Aliases: []string{"peets coffee", "皮爷咖啡"}},

	// 交通
	{Name: "滴滴", Category: models.CategoryTransport, Aliases: []string{"didi", "滴滴出行", "打车", "出租车"}},
	{Name: "Uber", Category: models.CategoryTransport, Aliases: []string{"uber"}},
	{Name: "Lyft", Category: models.CategoryTransport, Aliases: []string{"lyft"}},
	{Name: "Grab", Category: models.CategoryTransport, Aliases: []string{"grab"}},
	{Name: "高德打车", Category: models.CategoryTransport},
	{Name: "美团打车", Category: models.CategoryTransport},
	{Name: "曹操出行", Category: models.CategoryTransport},
	{Name: "首汽约车", Category: models.CategoryTransport},
	{Name: "神州专车", Category: models.CategoryTransport},
	{Name: "享道出行", Category: models.CategoryTransport},
	{Name: "如祺出行", Category: models.CategoryTransport},
	{Name: "T3出行", Category: models.CategoryTransport},
	{Name: "花小猪", Category: models.CategoryTransport},
	{Name: "阳光出行", Category: models.CategoryTransport},
	{Name: "嘀嗒", Category: models.CategoryTransport, Aliases: []string{"嘀嗒出行"}},
	{Name: "哈啰", Category: models.CategoryTransport, Aliases: []string{"哈啰出行", "哈罗", "hellobike"}},
	{Name: "青桔", Category: models.CategoryTransport, Aliases: []string{"青桔单车"}},
	{Name: "美团单车", Category: models.CategoryTransport},
	{Name: "摩拜", Category: models.CategoryTransport, Aliases: []string{"mobike"}},
	{Name: "ofo", Category: models.CategoryTransport, Aliases: []string{"小黄车"}},
	{Name: "地铁", Category: models.CategoryTransport, Aliases: []string{"subway", "metro", "地鐵"}},
	{Name: "公交", Category: models.CategoryTransport, Aliases: []string{"bus", "公交车", "巴士"}},
	{Name: "火车", Category: models.CategoryTransport, Aliases: []string{"train", "铁路", "高铁", "动车"}},
	{Name: "飞机", Category: models.CategoryTransport, Aliases: []string{"flight", "airplane", "航空", "机场"}},
	{Name: "加油", Category: models.CategoryTransport, Aliases: []string{"petrol", "gas", "油费", "中石化", "中石油", "壳牌"}},
	{Name: "停车", Category: models.CategoryTransport, Aliases: []string{"parking", "停车费", "泊车"}},
	{Name: "高速", Category: models.CategoryTransport, Aliases: []string{"highway", "高速费", "过路费", "etc"}},
	{Name: "洗车", Category: models.CategoryTransport, Aliases: []string{"car wash", "洗车费"}},
	{Name: "保养", Category: models.CategoryTransport, Aliases: []string{"maintenance", "保养费", "修车"}},
	{Name: "充电", Category: models.CategoryTransport, Aliases: []string{"charging", "充电桩", "特来电", "星星充电"}},

	// 购物
	{Name: "淘宝", Category: models.CategoryShopping, Aliases: []string{"taobao", "tb", "天猫", "tmall"}},
	{Name: "京东", Category: models.CategoryShopping, Aliases: []string{"jd", "jingdong"}},
	{Name: "拼多多", Category: models.CategoryShopping, Aliases: []string{"pdd", "pinduoduo"}},
	{Name: "亚马逊", Category: models.CategoryShopping, Aliases: []string{"amazon", "amzn"}},
	{Name: "天猫", Category: models.CategoryShopping, Aliases: []string{"tmall", "天猫超市"}},
	{Name: "盒马", Category: models.CategoryShopping, Aliases: []string{"hema", "盒马鲜生"}},
	{Name: "叮咚", Category: models.CategoryShopping, Aliases: []string{"叮咚买菜"}},
	{Name: "美团买菜", Category: models.CategoryShopping},
	{Name: "朴朴", Category: models.CategoryShopping, Aliases: []string{"朴朴超市"}},
	{Name: "永辉", Category: models.CategoryShopping, Aliases: []string{"永辉超市"}},
	{Name: "沃尔玛", Category: models.CategoryShopping, Aliases: []string{"walmart", "wal-mart"}},
	{Name: "家乐福", Category: models.CategoryShopping, Aliases: []string{"carrefour"}},
	{Name: "大润发", Category: models.CategoryShopping, Aliases: []string{"rt-mart"}},
	{Name: "山姆", Category: models.CategoryShopping, Aliases: []string{"sams", "山姆会员店"}},
	{Name: "Costco", Category: models.CategoryShopping, Aliases: []string{"costco", "开市客"}},
	{Name: "宜家", Category: models.CategoryShopping, Aliases: []string{"ikea"}},
	{Name: "无印良品", Category: models.CategoryShopping, Aliases: []string{"muji"}},
	{Name: "优衣库", Category: models.CategoryShopping, Aliases: []string{"uniqlo"}},
	{Name: "Zara", Category: models.CategoryShopping, Aliases: []string{"zara"}},
	{Name: "H&M", Category: models.CategoryShopping, Aliases: []string{"h&m", "hm"}},
	{Name: "GAP", Category: models.CategoryShopping, Aliases: []string{"gap"}},
	{Name: "Nike", Category: models.CategoryShopping, Aliases: []string{"nike", "耐克"}},
	{Name: "Adidas", Category: models.CategoryShopping, Aliases: []string{"adidas", "阿迪达斯"}},
	{Name: "Apple", Category: models.CategoryShopping, Aliases: []string{"apple", "苹果", "app store", "icloud"}},
	{Name: "小米", Category: models.CategoryShopping, Aliases: []string{"xiaomi", "mi"}},
	{Name: "华为", Category: models.CategoryShopping, Aliases: []string{"huawei"}},
	{Name: "苏宁", Category: models.CategoryShopping, Aliases: []string{"suning", "苏宁易购"}},
	{Name: "国美", Category: models.CategoryShopping, Aliases: []string{"gome", "国美电器"}},
	{Name: "迪卡侬", Category: models.CategoryShopping, Aliases: []string{"decathlon"}},
	{Name: "名创优品", Category: models.CategoryShopping, Aliases: []string{"miniso"}},
	{Name: "屈臣氏", Category: models.CategoryShopping, Aliases: []string{"watsons"}},
	{Name: "丝芙兰", Category: models.CategoryShopping, Aliases: []string{"sephora"}},
	{Name: "万宁", Category: models.CategoryShopping, Aliases: []string{"mannings"}},
	{Name: "7-11", Category: models.CategoryShopping, Aliases: []string{"7eleven", "seven eleven", "711"}},
	{Name: "全家", Category: models.CategoryShopping, Aliases: []string{"familymart", "family mart"}},
	{Name: "罗森", Category: models.CategoryShopping, Aliases: []string{"lawson"}},
	{Name: "喜士多", Category: models.CategoryShopping, Aliases: []string{"c-store"}},
	{Name: "便利蜂", Category: models.CategoryShopping, Aliases: []string{"bianlifeng"}},
	{Name: "每日优鲜", Category: models.CategoryShopping},
	{Name: "本来生活", Category: models.CategoryShopping},
	{Name: "顺丰", Category: models.CategoryShopping, Aliases: []string{"sf", "顺丰速运", "快递"}},
	{Name: "京东物流", Category: models.CategoryShopping},
	{Name: "菜鸟", Category: models.CategoryShopping, Aliases: []string{"菜鸟裹裹", "菜鸟驿站"}},

	// 娱乐
	{Name: "电影院", Category: models.CategoryEntertainment, Aliases: []string{"cinema", "影院", "万达影城", "cgv", "百老汇"}},
	{Name: "腾讯视频", Category: models.CategoryEntertainment, Aliases: []string{"tencent video", "腾讯"}},
	{Name: "爱奇艺", Category: models.CategoryEntertainment, Aliases: []string{"iqiyi"}},
	{Name: "优酷", Category: models.CategoryEntertainment, Aliases: []string{"youku"}},
	{Name: "B站", Category: models.CategoryEntertainment, Aliases: []string{"bilibili", "哔哩哔哩"}},
	{Name: "Netflix", Category: models.CategoryEntertainment, Aliases: []string{"netflix", "奈飞"}},
	{Name: "YouTube", Category: models.CategoryEntertainment, Aliases: []string{"youtube", "油管"}},
	{Name: "Spotify", Category: models.CategoryEntertainment, Aliases: []string{"spotify"}},
	{Name: "Apple Music", Category: models.CategoryEntertainment, Aliases: []string{"apple music"}},
	{Name: "QQ音乐", Category: models.CategoryEntertainment, Aliases: []string{"qq music"}},
	{Name: "网易云", Category: models.CategoryEntertainment, Aliases: []string{"netease cloud", "网易云音乐"}},
	{Name: "Steam", Category: models.CategoryEntertainment, Aliases: []string{"steam", "游戏"}},
	{Name: "PlayStation", Category: models.CategoryEntertainment, Aliases: []string{"ps", "ps5", "ps4", "playstation"}},
	{Name: "Xbox", Category: models.CategoryEntertainment, Aliases: []string{"xbox", "xbox game pass", "xgp"}},
	{Name: "Nintendo", Category: models.CategoryEntertainment, Aliases: []string{"nintendo", "switch", "任天堂"}},
	{Name: "KTV", Category: models.CategoryEntertainment, Aliases: []string{"ktv", "卡拉ok", "唱吧"}},
	{Name: "酒吧", Category: models.CategoryEntertainment, Aliases: []string{"bar", "pub"}},
	{Name: "剧本杀", Category: models.CategoryEntertainment},
	{Name: "密室", Category: models.CategoryEntertainment, Aliases: []string{"密室逃脱"}},
	{Name: "桌游", Category: models.CategoryEntertainment, Aliases: []string{"board game"}},
	{Name: "网吧", Category: models.CategoryEntertainment, Aliases: []string{"internet cafe", "网咖"}},
	{Name: "游乐场", Category: models.CategoryEntertainment, Aliases: []string{"amusement park", "迪士尼", "欢乐谷", "长隆", "环球影城"}},
	{Name: "动物园", Category: models.CategoryEntertainment, Aliases: []string{"zoo"}},
	{Name: "博物馆", Category: models.CategoryEntertainment, Aliases: []string{"museum"}},
	{Name: "演唱会", Category: models.CategoryEntertainment, Aliases: []string{"concert", "演出", "音乐节"}},
	{Name: "展览", Category: models.CategoryEntertainment, Aliases: []string{"exhibition", "画展", "艺术展"}},
	{Name: "书店", Category: models.CategoryEntertainment, Aliases: []string{"bookstore", "诚品", "西西弗", "言几又"}},
	{Name: "图书馆", Category: models.CategoryEntertainment, Aliases: []string{"library"}},
	{Name: "健身房", Category: models.CategoryEntertainment, Aliases: []string{"gym", "fitness", "威尔仕", "一兆韦德", "中体倍力"}},
	{Name: "游泳馆", Category: models.CategoryEntertainment, Aliases: []string{"swimming", "泳池"}},
	{Name: "瑜伽", Category: models.CategoryEntertainment, Aliases: []string{"yoga"}},
	{Name: "滑雪", Category: models.CategoryEntertainment, Aliases: []string{"skiing", "snowboarding"}},
	{Name: "保龄球", Category: models.CategoryEntertainment, Aliases: []string{"bowling"}},
	{Name: "台球", Category: models.CategoryEntertainment, Aliases: []string{"billiards", "桌球"}},
	{Name: "高尔夫", Category: models.CategoryEntertainment, Aliases: []string{"golf"}},
	{Name: "网球", Category: models.CategoryEntertainment, Aliases: []string{"tennis"}},
	{Name: "羽毛球", Category: models.CategoryEntertainment, Aliases: []string{"badminton"}},
	{Name: "篮球", Category: models.CategoryEntertainment, Aliases: []string{"basketball"}},
	{Name: "足球", Category: models.CategoryEntertainment, Aliases: []string{"football", "soccer"}},
	{Name: "乒乓球", Category: models.CategoryEntertainment, Aliases: []string{"pingpong", "table tennis"}},

	// 居住
	{Name: "房租", Category: models.CategoryHousing, Aliases: []string{"rent", "租金", "租房"}},
	{Name: "房贷", Category: models.CategoryHousing, Aliases: []string{"mortgage", "月供"}},
	{Name: "物业费", Category: models.CategoryHousing, Aliases: []string{"property fee", "物业"}},
	{Name: "水电", Category: models.CategoryHousing, Aliases: []string{"utilities", "水电费", "电费", "水费", "煤气", "燃气"}},
	{Name: "宽带", Category: models.CategoryHousing, Aliases: []string{"internet", "网络", "wifi", "电信", "联通", "移动", "长城宽带"}},
	{Name: "话费", Category: models.CategoryHousing, Aliases: []string{"phone bill", "手机费", "电话费", "流量", "套餐"}},
	{Name: "有线电视", Category: models.CategoryHousing, Aliases: []string{"cable tv", "歌华有线"}},
	{Name: "维修", Category: models.CategoryHousing, Aliases: []string{"repair", "修理", "家电维修"}},
	{Name: "保洁", Category: models.CategoryHousing, Aliases: []string{"cleaning", "家政", "阿姨", "钟点工"}},
	{Name: "搬家", Category: models.CategoryHousing, Aliases: []string{"moving", "搬家公司"}},
	{Name: "装修", Category: models.CategoryHousing, Aliases: []string{"renovation", "装修费", "家具", "建材"}},
	{Name: "家具", Category: models.CategoryHousing, Aliases: []string{"furniture", "宜家", "红星美凯龙", "居然之家"}},
	{Name: "家电", Category: models.CategoryHousing, Aliases: []string{"appliances", "电器", "苏宁", "国美"}},
	{Name: "超市", Category: models.CategoryHousing, Aliases: []string{"supermarket", "日用品"}},

	// 医疗
	{Name: "医院", Category: models.CategoryMedical, Aliases: []string{"hospital", "诊所", "门诊", "急诊", "挂号"}},
	{Name: "药店", Category: models.CategoryMedical, Aliases: []string{"pharmacy", "药房", "屈臣氏", "万宁", "海王星辰", "老百姓大药房"}},
	{Name: "体检", Category: models.CategoryMedical, Aliases: []string{"checkup", "体检中心", "美年大健康", "爱康国宾"}},
	{Name: "牙医", Category: models.CategoryMedical, Aliases: []string{"dentist", "牙科", "口腔", "瑞尔齿科"}},
	{Name: "眼科", Category: models.CategoryMedical, Aliases: []string{"eye doctor", "眼镜", "验光", "宝岛眼镜", "亮视点"}},
	{Name: "按摩", Category: models.CategoryMedical, Aliases: []string{"massage", "推拿", "理疗", "足疗", "spa"}},
	{Name: "心理咨询", Category: models.CategoryMedical, Aliases: []string{"therapy", "心理医生"}},
	{Name: "疫苗", Category: models.CategoryMedical, Aliases: []string{"vaccine", "打针", "接种"}},
	{Name: "中医", Category: models.CategoryMedical, Aliases: []string{"tcm", "中药", "针灸"}},

	// 教育
	{Name: "学费", Category: models.CategoryEducation, Aliases: []string{"tuition", "学杂费", "书本费"}},
	{Name: "培训", Category: models.CategoryEducation, Aliases: []string{"training", "培训班", "新东方", "好未来", "学而思"}},
	{Name: "考试", Category: models.CategoryEducation, Aliases: []string{"exam", "考试费", "托福", "雅思", "gre", "gmat", "cfa"}},
	{Name: "书籍", Category: models.CategoryEducation, Aliases: []string{"books", "买书", "教材", "参考书", "当当", "京东图书", "亚马逊图书"}},
	{Name: "在线课程", Category: models.CategoryEducation, Aliases: []string{"online course", "网课", "慕课", "coursera", "udemy", "极客时间", "得到", "混沌学园"}},
	{Name: "会员", Category: models.CategoryEducation, Aliases: []string{"membership", "知识付费", "知乎", "喜马拉雅", "樊登读书"}},
	{Name: "文具", Category: models.CategoryEducation, Aliases: []string{"stationery", "办公用品", "得力", "晨光"}},

	// 投资
	{Name: "股票", Category: models.CategoryInvestment, Aliases: []string{"stock", "股市", "证券", "华泰", "中信", "国泰君安"}},
	{Name: "基金", Category: models.CategoryInvestment, Aliases: []string{"fund", "基金定投", "余额宝", "理财通", "蚂蚁财富"}},
	{Name: "债券", Category: models.CategoryInvestment, Aliases: []string{"bond"}},
	{Name: "期货", Category: models.CategoryInvestment, Aliases: []string{"futures"}},
	{Name: "外汇", Category: models.CategoryInvestment, Aliases: []string{"forex"}},
	{Name: "保险", Category: models.CategoryInvestment, Aliases: []string{"insurance", "保单", "平安", "人寿", "太平洋保险", "重疾险"}},
	{Name: "黄金", Category: models.CategoryInvestment, Aliases: []string{"gold"}},
	{Name: "数字货币", Category: models.CategoryInvestment, Aliases: []string{"crypto", "bitcoin", "btc", "eth", "币圈", "交易所"}},
	{Name: "房产", Category: models.CategoryInvestment, Aliases: []string{"property investment", "买房投资"}},
	{Name: "定投", Category: models.CategoryInvestment, Aliases: []string{"dca", "定期投资"}},
}

// aliasRef is one scan slot in the reverse index: a lowercased alias and the
// canonical merchant it resolves to.
type aliasRef struct {
	alias     string
	canonical string
}

// aliasIndex is the derived case-insensitive reverse lookup over the merchant
// dictionary. Built once, read-only afterwards.
type aliasIndex struct {
	ordered    []aliasRef
	byAlias    map[string]string
	categories map[string]models.Category
}

// buildAliasIndex derives the reverse index from merchantDict. For every
// entry, the canonical name is indexed first (it is its own alias), then the
// declared aliases. A duplicate alias never displaces an earlier one.
func buildAliasIndex() *aliasIndex {
	idx := &aliasIndex{
		byAlias:    make(map[string]string),
		categories: make(map[string]models.Category),
	}
	add := func(alias, canonical string) {
		key := strings.ToLower(alias)
		if _, seen := idx.byAlias[key]; seen {
			return
		}
		idx.byAlias[key] = canonical
		idx.ordered = append(idx.ordered, aliasRef{alias: key, canonical: canonical})
	}
	for _, entry := range merchantDict {
		idx.categories[entry.Name] = entry.Category
		add(entry.Name, entry.Name)
		for _, alias := range entry.Aliases {
			add(alias, entry.Name)
		}
	}
	return idx
}
