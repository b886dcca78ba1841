package symbols

// Category classifies a pinyin symbol within the inventory.
type Category string

const (
	CategoryInitial Category = "initial"
	CategoryFinal   Category = "final"
	CategoryWhole   Category = "whole"
)

// Symbol is one atomic pinyin unit in the fixed learning inventory,
// with the display metadata shown on its flashcard.
type Symbol struct {
	ID       string
	Display  string
	Category Category
	Mnemonic string
	Example  string // example word in hanzi
	ExamplePinyin string
}

// Inventory is the fixed pinyin symbol set: 23 initials, 24 finals and
// 16 whole syllables. IDs use bare letters; 'v' stands in for 'ü' so IDs
// stay ASCII-safe as storage keys.
var Inventory = []Symbol{
	// Initials
	{ID: "b", Display: "b", Category: CategoryInitial, Mnemonic: "like 'p' in 'spin', unaspirated", Example: "爸爸", ExamplePinyin: "bà ba"},
	{ID: "p", Display: "p", Category: CategoryInitial, Mnemonic: "like 'p' in 'pin', with a puff of air", Example: "朋友", ExamplePinyin: "péng you"},
	{ID: "m", Display: "m", Category: CategoryInitial, Mnemonic: "like 'm' in 'mother'", Example: "妈妈", ExamplePinyin: "mā ma"},
	{ID: "f", Display: "f", Category: CategoryInitial, Mnemonic: "like 'f' in 'fly'", Example: "飞机", ExamplePinyin: "fēi jī"},
	{ID: "d", Display: "d", Category: CategoryInitial, Mnemonic: "like 't' in 'stop', unaspirated", Example: "大", ExamplePinyin: "dà"},
	{ID: "t", Display: "t", Category: CategoryInitial, Mnemonic: "like 't' in 'top', aspirated", Example: "他", ExamplePinyin: "tā"},
	{ID: "n", Display: "n", Category: CategoryInitial, Mnemonic: "like 'n' in 'no'", Example: "你", ExamplePinyin: "nǐ"},
	{ID: "l", Display: "l", Category: CategoryInitial, Mnemonic: "like 'l' in 'look'", Example: "老师", ExamplePinyin: "lǎo shī"},
	{ID: "g", Display: "g", Category: CategoryInitial, Mnemonic: "like 'k' in 'skill', unaspirated", Example: "狗", ExamplePinyin: "gǒu"},
	{ID: "k", Display: "k", Category: CategoryInitial, Mnemonic: "like 'k' in 'kite', aspirated", Example: "看", ExamplePinyin: "kàn"},
	{ID: "h", Display: "h", Category: CategoryInitial, Mnemonic: "like 'h' in 'hot', slightly raspy", Example: "好", ExamplePinyin: "hǎo"},
	{ID: "j", Display: "j", Category: CategoryInitial, Mnemonic: "like 'j' in 'jeep', tongue low", Example: "家", ExamplePinyin: "jiā"},
	{ID: "q", Display: "q", Category: CategoryInitial, Mnemonic: "like 'ch' in 'cheese', aspirated", Example: "钱", ExamplePinyin: "qián"},
	{ID: "x", Display: "x", Category: CategoryInitial, Mnemonic: "between 's' and 'sh', as in 'she'", Example: "谢谢", ExamplePinyin: "xiè xie"},
	{ID: "zh", Display: "zh", Category: CategoryInitial, Mnemonic: "like 'j' in 'judge', tongue curled back", Example: "中国", ExamplePinyin: "zhōng guó"},
	{ID: "ch", Display: "ch", Category: CategoryInitial, Mnemonic: "like 'ch' in 'church', tongue curled back", Example: "吃", ExamplePinyin: "chī"},
	{ID: "sh", Display: "sh", Category: CategoryInitial, Mnemonic: "like 'sh' in 'shirt', tongue curled back", Example: "书", ExamplePinyin: "shū"},
	{ID: "r", Display: "r", Category: CategoryInitial, Mnemonic: "like the 's' in 'measure'", Example: "人", ExamplePinyin: "rén"},
	{ID: "z", Display: "z", Category: CategoryInitial, Mnemonic: "like 'ds' in 'kids'", Example: "走", ExamplePinyin: "zǒu"},
	{ID: "c", Display: "c", Category: CategoryInitial, Mnemonic: "like 'ts' in 'cats', aspirated", Example: "菜", ExamplePinyin: "cài"},
	{ID: "s", Display: "s", Category: CategoryInitial, Mnemonic: "like 's' in 'say'", Example: "三", ExamplePinyin: "sān"},
	{ID: "y", Display: "y", Category: CategoryInitial, Mnemonic: "like 'y' in 'yes'", Example: "一", ExamplePinyin: "yī"},
	{ID: "w", Display: "w", Category: CategoryInitial, Mnemonic: "like 'w' in 'way'", Example: "我", ExamplePinyin: "wǒ"},

	// Finals
	{ID: "a", Display: "a", Category: CategoryFinal, Mnemonic: "like 'a' in 'father'", Example: "阿姨", ExamplePinyin: "ā yí"},
	{ID: "o", Display: "o", Category: CategoryFinal, Mnemonic: "like 'o' in 'or', lips rounded", Example: "我", ExamplePinyin: "wǒ"},
	{ID: "e", Display: "e", Category: CategoryFinal, Mnemonic: "like 'e' in 'her', unrounded", Example: "鹅", ExamplePinyin: "é"},
	{ID: "i", Display: "i", Category: CategoryFinal, Mnemonic: "like 'ee' in 'see'", Example: "衣服", ExamplePinyin: "yī fu"},
	{ID: "u", Display: "u", Category: CategoryFinal, Mnemonic: "like 'oo' in 'food'", Example: "五", ExamplePinyin: "wǔ"},
	{ID: "v", Display: "ü", Category: CategoryFinal, Mnemonic: "say 'ee' with rounded lips", Example: "鱼", ExamplePinyin: "yú"},
	{ID: "ai", Display: "ai", Category: CategoryFinal, Mnemonic: "like 'eye'", Example: "爱", ExamplePinyin: "ài"},
	{ID: "ei", Display: "ei", Category: CategoryFinal, Mnemonic: "like 'ay' in 'way'", Example: "黑", ExamplePinyin: "hēi"},
	{ID: "ui", Display: "ui", Category: CategoryFinal, Mnemonic: "like 'way' without the w", Example: "水", ExamplePinyin: "shuǐ"},
	{ID: "ao", Display: "ao", Category: CategoryFinal, Mnemonic: "like 'ow' in 'cow'", Example: "猫", ExamplePinyin: "māo"},
	{ID: "ou", Display: "ou", Category: CategoryFinal, Mnemonic: "like 'o' in 'go'", Example: "口", ExamplePinyin: "kǒu"},
	{ID: "iu", Display: "iu", Category: CategoryFinal, Mnemonic: "like 'yo' in 'yo-yo'", Example: "六", ExamplePinyin: "liù"},
	{ID: "ie", Display: "ie", Category: CategoryFinal, Mnemonic: "like 'ye' in 'yes'", Example: "谢谢", ExamplePinyin: "xiè xie"},
	{ID: "ve", Display: "üe", Category: CategoryFinal, Mnemonic: "ü gliding into e", Example: "月", ExamplePinyin: "yuè"},
	{ID: "er", Display: "er", Category: CategoryFinal, Mnemonic: "like 'ar' in 'are', tongue curled", Example: "二", ExamplePinyin: "èr"},
	{ID: "an", Display: "an", Category: CategoryFinal, Mnemonic: "like 'an' in 'ban'", Example: "山", ExamplePinyin: "shān"},
	{ID: "en", Display: "en", Category: CategoryFinal, Mnemonic: "like 'un' in 'under'", Example: "很", ExamplePinyin: "hěn"},
	{ID: "in", Display: "in", Category: CategoryFinal, Mnemonic: "like 'in' in 'pin'", Example: "新", ExamplePinyin: "xīn"},
	{ID: "un", Display: "un", Category: CategoryFinal, Mnemonic: "like 'won' with rounded lips", Example: "春", ExamplePinyin: "chūn"},
	{ID: "vn", Display: "ün", Category: CategoryFinal, Mnemonic: "ü followed by n", Example: "云", ExamplePinyin: "yún"},
	{ID: "ang", Display: "ang", Category: CategoryFinal, Mnemonic: "like 'ong' in 'song', open", Example: "忙", ExamplePinyin: "máng"},
	{ID: "eng", Display: "eng", Category: CategoryFinal, Mnemonic: "like 'ung' in 'lung'", Example: "冷", ExamplePinyin: "lěng"},
	{ID: "ing", Display: "ing", Category: CategoryFinal, Mnemonic: "like 'ing' in 'sing'", Example: "星", ExamplePinyin: "xīng"},
	{ID: "ong", Display: "ong", Category: CategoryFinal, Mnemonic: "like 'ong' in 'gong', lips rounded", Example: "红", ExamplePinyin: "hóng"},

	// Whole syllables
	{ID: "zhi", Display: "zhi", Category: CategoryWhole, Mnemonic: "zh with a buzzed vowel", Example: "知道", ExamplePinyin: "zhī dào"},
	{ID: "chi", Display: "chi", Category: CategoryWhole, Mnemonic: "ch with a buzzed vowel", Example: "吃饭", ExamplePinyin: "chī fàn"},
	{ID: "shi", Display: "shi", Category: CategoryWhole, Mnemonic: "sh with a buzzed vowel", Example: "十", ExamplePinyin: "shí"},
	{ID: "ri", Display: "ri", Category: CategoryWhole, Mnemonic: "r with a buzzed vowel", Example: "日本", ExamplePinyin: "rì běn"},
	{ID: "zi", Display: "zi", Category: CategoryWhole, Mnemonic: "z with a buzzed vowel", Example: "字", ExamplePinyin: "zì"},
	{ID: "ci", Display: "ci", Category: CategoryWhole, Mnemonic: "c with a buzzed vowel", Example: "词", ExamplePinyin: "cí"},
	{ID: "si", Display: "si", Category: CategoryWhole, Mnemonic: "s with a buzzed vowel", Example: "四", ExamplePinyin: "sì"},
	{ID: "yi", Display: "yi", Category: CategoryWhole, Mnemonic: "the final i standing alone", Example: "一", ExamplePinyin: "yī"},
	{ID: "wu", Display: "wu", Category: CategoryWhole, Mnemonic: "the final u standing alone", Example: "五", ExamplePinyin: "wǔ"},
	{ID: "yu", Display: "yu", Category: CategoryWhole, Mnemonic: "the final ü standing alone", Example: "鱼", ExamplePinyin: "yú"},
	{ID: "ye", Display: "ye", Category: CategoryWhole, Mnemonic: "the final ie standing alone", Example: "也", ExamplePinyin: "yě"},
	{ID: "yue", Display: "yue", Category: CategoryWhole, Mnemonic: "the final üe standing alone", Example: "月亮", ExamplePinyin: "yuè liang"},
	{ID: "yuan", Display: "yuan", Category: CategoryWhole, Mnemonic: "ü gliding into an", Example: "元", ExamplePinyin: "yuán"},
	{ID: "yin", Display: "yin", Category: CategoryWhole, Mnemonic: "the final in standing alone", Example: "音乐", ExamplePinyin: "yīn yuè"},
	{ID: "yun", Display: "yun", Category: CategoryWhole, Mnemonic: "the final ün standing alone", Example: "云", ExamplePinyin: "yún"},
	{ID: "ying", Display: "ying", Category: CategoryWhole, Mnemonic: "the final ing standing alone", Example: "英语", ExamplePinyin: "yīng yǔ"},
}

var inventoryByID = func() map[string]Symbol {
	m := make(map[string]Symbol, len(Inventory))
	for _, s := range Inventory {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the inventory entry for id, if present.
func Lookup(id string) (Symbol, bool) {
	s, ok := inventoryByID[id]
	return s, ok
}
