package content

import "culture-podcast/internal/models"

// themeOrder 主题轮换顺序（未指定主题时按日轮换）
var themeOrder = []string{"art", "history", "literature", "music", "film", "museum"}

// themeNames 主题中文名
var themeNames = map[string]string{
	"art":        "艺术",
	"history":    "历史",
	"literature": "文学",
	"music":      "音乐",
	"film":       "电影",
	"museum":     "博物馆",
}

// database 内置内容库，每个主题下多条内容按日轮换
var database = map[string][]models.Content{
	"art": {
		{
			Title: "梵高的星空：燃烧的笔触",
			Body: "1889年6月，梵高在圣雷米疗养院的窗前画下了《星月夜》。画面中翻滚的星云并非写实，而是他内心世界的投影。" +
				"厚重的笔触层层堆叠，柏树如黑色火焰般直冲天际，村庄则安静地卧在山谷中。" +
				"这幅画在梵高生前无人问津，如今却是纽约现代艺术博物馆的镇馆之宝。" +
				"艺术史家认为，《星月夜》标志着表现主义的萌芽：画家不再描绘眼睛所见，而是描绘心灵所感。",
			Keywords:        []string{"梵高", "星月夜", "后印象派", "表现主义"},
			DurationMinutes: 3,
			Difficulty:      "入门",
		},
		{
			Title: "齐白石的虾：妙在似与不似之间",
			Body: "齐白石画虾数十年，晚年才达到炉火纯青的境界。他笔下的虾通体透明，几笔淡墨便勾出虾身的弹性与水中的动感。" +
				"齐白石曾说，作画妙在似与不似之间，太似为媚俗，不似为欺世。" +
				"他将文人画的笔墨趣味与民间艺术的生活气息融为一体，开创了大写意花鸟画的新格局。" +
				"一只小小的虾，承载的是中国画以少胜多、以简驭繁的美学传统。",
			Keywords:        []string{"齐白石", "写意", "中国画", "花鸟画"},
			DurationMinutes: 3,
			Difficulty:      "入门",
		},
		{
			Title: "包豪斯：设计改变生活",
			Body: "1919年，格罗皮乌斯在德国魏玛创立包豪斯学校，提出艺术与技术的新统一。" +
				"包豪斯主张形式追随功能，反对繁复装饰，倡导简洁、实用、可批量生产的设计。" +
				"虽然学校只存在了十四年，但它的理念深刻影响了现代建筑、家具、平面设计乃至今天的手机界面。" +
				"我们身边的极简风格产品，几乎都能追溯到包豪斯的精神源头。",
			Keywords:        []string{"包豪斯", "现代设计", "格罗皮乌斯", "功能主义"},
			DurationMinutes: 4,
			Difficulty:      "进阶",
		},
	},
	"history": {
		{
			Title: "丝绸之路：驼铃声中的文明对话",
			Body: "两千多年前，张骞出使西域，打通了连接长安与地中海的商路。" +
				"丝绸、瓷器、茶叶向西而行，葡萄、苜蓿、琉璃向东而来。" +
				"但丝绸之路运送的不只是货物，还有佛教的经卷、波斯的乐器、希腊的雕塑技法。" +
				"敦煌莫高窟的壁画里，飞天的飘带与希腊化的衣褶同处一窟，正是这场千年文明对话的见证。",
			Keywords:        []string{"丝绸之路", "张骞", "敦煌", "文明交流"},
			DurationMinutes: 4,
			Difficulty:      "入门",
		},
		{
			Title: "宋代的城市革命",
			Body: "北宋的开封或许是当时世界上最繁华的城市。坊市制度瓦解后，商铺临街而设，夜市通宵达旦。" +
				"《清明上河图》中，虹桥上下人声鼎沸，酒楼茶肆鳞次栉比。" +
				"纸币交子在四川诞生，瓦舍勾栏里说书人讲着三国故事。" +
				"历史学家把这场变化称为中国的城市革命，市民文化从此登上历史舞台。",
			Keywords:        []string{"宋代", "开封", "清明上河图", "市民文化"},
			DurationMinutes: 4,
			Difficulty:      "进阶",
		},
		{
			Title: "郑和下西洋：大航海前夜的东方船队",
			Body: "1405年，郑和率两百余艘海船、两万七千余人从刘家港出发，开始了七下西洋的壮举。" +
				"宝船巨大如楼，船队远达东非海岸，比哥伦布的远航早了近九十年。" +
				"郑和带去的是瓷器与丝绸，带回的是长颈鹿与香料，沿途建立的是朝贡与贸易的网络，而非殖民地。" +
				"这支船队的谢幕，也成为世界史上耐人寻味的转折。",
			Keywords:        []string{"郑和", "下西洋", "宝船", "明代"},
			DurationMinutes: 5,
			Difficulty:      "进阶",
		},
	},
	"literature": {
		{
			Title: "《红楼梦》：千红一窟的悲悯",
			Body: "曹雪芹披阅十载、增删五次，写就了这部中国古典小说的巅峰之作。" +
				"大观园里的诗社、宴饮、灯谜，无不精致入微；而繁华背后，是白茫茫大地真干净的苍凉底色。" +
				"《红楼梦》写的不仅是宝黛爱情，更是对一个时代、一种文明的深情回望与冷静解剖。" +
				"鲁迅评价它：悲凉之雾，遍被华林。",
			Keywords:        []string{"红楼梦", "曹雪芹", "古典小说", "大观园"},
			DurationMinutes: 4,
			Difficulty:      "进阶",
		},
		{
			Title: "李白与杜甫：盛唐的双子星",
			Body: "公元744年，李白与杜甫在洛阳相遇，闻一多称之为太阳和月亮的相碰。" +
				"李白飞扬飘逸，笔落惊风雨；杜甫沉郁顿挫，语不惊人死不休。" +
				"一个把盛唐的自信写到了极致，一个把乱世的苦难记录成诗史。" +
				"两种截然不同的气质，共同构成了中国诗歌的最高峰。",
			Keywords:        []string{"李白", "杜甫", "唐诗", "盛唐"},
			DurationMinutes: 3,
			Difficulty:      "入门",
		},
		{
			Title: "马尔克斯与魔幻现实主义",
			Body: "多年以后，面对行刑队，奥雷里亚诺·布恩迪亚上校将会回想起父亲带他去见识冰块的那个遥远的下午。" +
				"《百年孤独》的开篇一句，把过去、现在与未来折叠在一起。" +
				"马尔克斯用魔幻的笔法书写拉丁美洲最真实的历史：孤独、暴力、遗忘与爱。" +
				"这部小说影响了莫言、陈忠实等一代中国作家，也改变了世界文学的版图。",
			Keywords:        []string{"马尔克斯", "百年孤独", "魔幻现实主义", "拉美文学"},
			DurationMinutes: 4,
			Difficulty:      "高级",
		},
	},
	"music": {
		{
			Title: "贝多芬《第九交响曲》：欢乐颂的诞生",
			Body: "1824年5月，完全失聪的贝多芬站在维也纳的舞台上，亲自指挥《第九交响曲》的首演。" +
				"终曲乐章里，人声第一次进入交响曲，席勒的诗句亿万人民团结起来响彻大厅。" +
				"演出结束时，他听不见身后雷鸣般的掌声，直到女中音搀扶他转身。" +
				"这部作品如今是欧盟盟歌，也是人类团结理想的音乐象征。",
			Keywords:        []string{"贝多芬", "第九交响曲", "欢乐颂", "古典音乐"},
			DurationMinutes: 4,
			Difficulty:      "入门",
		},
		{
			Title: "古琴：三千年的中国之音",
			Body: "古琴有三千多年历史，是中国最古老的弹拨乐器之一。" +
				"七根弦、十三个徽位，承载着高山流水遇知音的千古佳话。" +
				"琴声讲究清微淡远，追求弦外之音的意境。" +
				"2003年，古琴艺术被列入联合国人类非物质文化遗产名录，《流水》还随旅行者号探测器飞向了太空。",
			Keywords:        []string{"古琴", "非遗", "高山流水", "传统音乐"},
			DurationMinutes: 3,
			Difficulty:      "入门",
		},
		{
			Title: "爵士乐的即兴精神",
			Body: "二十世纪初，爵士乐诞生于新奥尔良的街头。它融合了布鲁斯的忧郁、拉格泰姆的律动与铜管乐队的喧闹。" +
				"爵士乐的灵魂在于即兴：乐手在和声框架内自由对话，每一次演奏都是不可复制的创造。" +
				"从路易斯·阿姆斯特朗到迈尔斯·戴维斯，爵士乐不断自我革新，" +
				"它的即兴精神也影响了二十世纪几乎所有流行音乐。",
			Keywords:        []string{"爵士乐", "即兴", "新奥尔良", "阿姆斯特朗"},
			DurationMinutes: 4,
			Difficulty:      "进阶",
		},
	},
	"film": {
		{
			Title: "《公民凯恩》：电影语言的教科书",
			Body: "1941年，二十五岁的奥逊·威尔斯拍出了《公民凯恩》。" +
				"深焦摄影让前景与背景同样清晰，低机位仰拍让天花板第一次进入画面，非线性叙事围绕玫瑰花蕾层层展开。" +
				"这部票房失利的影片，后来长期占据影史最伟大电影榜单之首。" +
				"它告诉后来者：电影不只是记录故事的工具，更是一门独立的语言。",
			Keywords:        []string{"公民凯恩", "奥逊·威尔斯", "深焦摄影", "电影语言"},
			DurationMinutes: 4,
			Difficulty:      "进阶",
		},
		{
			Title: "小津安二郎的榻榻米镜头",
			Body: "小津安二郎一生都在拍同一部电影：嫁女儿、空巢、家庭的聚散。" +
				"他把摄影机放在离地三尺的榻榻米高度，人物端坐画面中央，直视镜头说话。" +
				"《东京物语》里，老父亲望着海说：东京太大了，我们要是走散了，恐怕一辈子都见不到了。" +
				"极简的形式之下，是对时间流逝与人情冷暖最深沉的凝视。",
			Keywords:        []string{"小津安二郎", "东京物语", "日本电影", "家庭剧"},
			DurationMinutes: 4,
			Difficulty:      "高级",
		},
		{
			Title: "中国动画学派的黄金年代",
			Body: "上世纪五六十年代，上海美术电影制片厂创造了世界动画史上独树一帜的中国学派。" +
				"《小蝌蚪找妈妈》把齐白石的水墨搬上银幕，《大闹天宫》让京剧脸谱与动画结合，" +
				"《九色鹿》再现了敦煌壁画的瑰丽。" +
				"这些作品在国际上屡获大奖，民族的才是世界的，在动画领域得到了最好的印证。",
			Keywords:        []string{"中国动画", "水墨动画", "大闹天宫", "上海美影厂"},
			DurationMinutes: 3,
			Difficulty:      "入门",
		},
	},
	"museum": {
		{
			Title: "故宫：从紫禁城到博物院",
			Body: "1925年10月10日，紫禁城的宫门向公众敞开，故宫博物院宣告成立。" +
				"这座明清两代的皇宫，拥有世界上现存规模最大的木结构古建筑群，藏品超过一百八十六万件。" +
				"从《千里江山图》到各种釉彩大瓶，从青铜到钟表，故宫是一部立体的中华文明史。" +
				"近年来，数字故宫和文创产品让六百岁的紫禁城变得年轻起来。",
			Keywords:        []string{"故宫", "紫禁城", "博物院", "文物"},
			DurationMinutes: 4,
			Difficulty:      "入门",
		},
		{
			Title: "卢浮宫与《蒙娜丽莎》的微笑",
			Body: "卢浮宫从中世纪的城堡变成王宫，又在法国大革命后成为公共博物馆。" +
				"在它的四十万件藏品中，最著名的莫过于达·芬奇的《蒙娜丽莎》。" +
				"达·芬奇用晕涂法让人物的嘴角融入阴影，微笑因此若隐若现、难以捉摸。" +
				"1911年的失窃案让这幅小小的木板画名声大噪，如今每天有数万人隔着防弹玻璃与她对视。",
			Keywords:        []string{"卢浮宫", "蒙娜丽莎", "达芬奇", "晕涂法"},
			DurationMinutes: 4,
			Difficulty:      "入门",
		},
		{
			Title: "三星堆：沉睡三千年的古蜀之谜",
			Body: "1986年，四川广汉三星堆两个祭祀坑的发现震惊世界：高大的青铜立人像、凸出的纵目面具、挺拔的青铜神树。" +
				"这些器物风格奇异，不见于任何中原典籍记载。" +
				"2021年起的新一轮发掘又出土了黄金面具、龟背形网格状器等上万件文物。" +
				"三星堆证明，中华文明的起源是满天星斗，多元一体。",
			Keywords:        []string{"三星堆", "古蜀文明", "青铜器", "考古"},
			DurationMinutes: 5,
			Difficulty:      "进阶",
		},
	},
}
