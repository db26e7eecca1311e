package giftgen

// Template is one idea blueprint. The price hint is filled in from the
// requester's budget tier, never from the template itself.
type Template struct {
	Title       string
	Description string
	Why         string
	Tags        []string
}

// Category buckets used by the interest classifier.
const (
	CategoryTechnology = "technology"
	CategorySports     = "sports"
	CategoryMusic      = "music"
	CategoryArt        = "art"
)

var allCategories = []string{CategoryTechnology, CategorySports, CategoryMusic, CategoryArt}

// categoryKeywords maps a category to the interest tokens that select it.
// Matching is on lowercased whole tokens, both English and Russian.
var categoryKeywords = map[string][]string{
	CategoryTechnology: {
		"tech", "technology", "it", "gadget", "gadgets", "computer", "computers",
		"programming", "coding", "gaming", "games", "robotics",
		"техника", "технологии", "гаджеты", "компьютер", "компьютеры",
		"программирование", "айти", "игры", "робототехника",
	},
	CategorySports: {
		"sport", "sports", "fitness", "gym", "running", "football", "soccer",
		"yoga", "cycling", "swimming", "hiking",
		"спорт", "фитнес", "бег", "футбол", "йога", "велосипед", "плавание", "походы",
	},
	CategoryMusic: {
		"music", "guitar", "piano", "singing", "vinyl", "concerts", "dj",
		"музыка", "гитара", "пианино", "вокал", "винил", "концерты",
	},
	CategoryArt: {
		"art", "drawing", "painting", "design", "photography", "sketching",
		"crafts", "искусство", "рисование", "живопись", "дизайн",
		"фотография", "скетчинг", "творчество",
	},
}

// templatePools holds the idea blueprints per language and category.
var templatePools = map[string]map[string][]Template{
	"en": {
		CategoryTechnology: {
			{Title: "Wireless Earbuds", Description: "Compact earbuds with noise cancellation and a charging case.", Why: "Everyday tech that fits any pocket and any commute.", Tags: []string{"tech", "audio"}},
			{Title: "Smart Watch", Description: "Tracks activity, sleep and notifications from the wrist.", Why: "A practical gadget for someone who lives by their phone.", Tags: []string{"tech", "wearable"}},
			{Title: "Portable Power Bank", Description: "High-capacity charger for phones, tablets and earbuds.", Why: "Nobody refuses spare battery life.", Tags: []string{"tech", "travel"}},
			{Title: "Mechanical Keyboard", Description: "Tactile keyboard with swappable keycaps and backlight.", Why: "Turns hours at the computer into a small pleasure.", Tags: []string{"tech", "desk"}},
			{Title: "Smart Home Speaker", Description: "Voice assistant speaker that controls lights and music.", Why: "An easy entry into a smarter home.", Tags: []string{"tech", "home"}},
			{Title: "VR Headset Session", Description: "A gift session in a virtual reality arcade.", Why: "Memorable experience instead of another object.", Tags: []string{"tech", "experience"}},
		},
		CategorySports: {
			{Title: "Fitness Tracker", Description: "Lightweight band tracking steps, pulse and workouts.", Why: "Keeps motivation visible on the wrist.", Tags: []string{"sports", "wearable"}},
			{Title: "Yoga Mat Set", Description: "Non-slip mat with a strap and cork blocks.", Why: "Upgrades home practice immediately.", Tags: []string{"sports", "yoga"}},
			{Title: "Insulated Water Bottle", Description: "Steel bottle that keeps drinks cold through a full session.", Why: "A daily companion for any training routine.", Tags: []string{"sports", "gear"}},
			{Title: "Running Belt", Description: "Slim belt for phone, keys and gels on long runs.", Why: "Solves a real runner's annoyance.", Tags: []string{"sports", "running"}},
			{Title: "Massage Roller", Description: "Foam roller for recovery after heavy workouts.", Why: "Recovery is the gift athletes forget to buy themselves.", Tags: []string{"sports", "recovery"}},
			{Title: "Climbing Day Pass", Description: "Entry and gear rental at a climbing gym.", Why: "A new challenge for someone who loves to move.", Tags: []string{"sports", "experience"}},
		},
		CategoryMusic: {
			{Title: "Vinyl Record", Description: "A favorite album pressed on vinyl.", Why: "Physical music still makes the best-looking gift.", Tags: []string{"music", "vinyl"}},
			{Title: "Bluetooth Speaker", Description: "Rich-sounding portable speaker for home and picnics.", Why: "Music follows them wherever they go.", Tags: []string{"music", "audio"}},
			{Title: "Concert Tickets", Description: "Two tickets to a local live show.", Why: "Shared experiences beat boxed gifts.", Tags: []string{"music", "experience"}},
			{Title: "Guitar Accessories Kit", Description: "Strings, picks, capo and a tuner in one box.", Why: "Consumables every guitarist always needs.", Tags: []string{"music", "guitar"}},
			{Title: "Studio Headphones", Description: "Closed-back headphones with honest, detailed sound.", Why: "Lets them hear their favorite records anew.", Tags: []string{"music", "audio"}},
			{Title: "Music Streaming Gift Card", Description: "Months of ad-free streaming on their platform of choice.", Why: "A gift they will use every single day.", Tags: []string{"music", "subscription"}},
		},
		CategoryArt: {
			{Title: "Watercolor Set", Description: "Artist-grade paints with brushes and textured paper.", Why: "Good materials change how painting feels.", Tags: []string{"art", "painting"}},
			{Title: "Sketchbook and Fineliners", Description: "Thick-paper sketchbook with a set of pigment liners.", Why: "An open invitation to draw every day.", Tags: []string{"art", "drawing"}},
			{Title: "Pottery Workshop", Description: "A hands-on wheel-throwing class for beginners.", Why: "Creative memory plus a self-made cup to keep.", Tags: []string{"art", "experience"}},
			{Title: "Art Print", Description: "A framed print from an artist they admire.", Why: "Art on the wall is a daily reminder of the giver.", Tags: []string{"art", "decor"}},
			{Title: "Calligraphy Starter Kit", Description: "Nib pens, ink and guided practice sheets.", Why: "A calm, absorbing skill to learn from scratch.", Tags: []string{"art", "craft"}},
			{Title: "Instant Camera", Description: "Camera that prints credit-card photos on the spot.", Why: "Turns gatherings into instant keepsakes.", Tags: []string{"art", "photography"}},
		},
	},
	"ru": {
		CategoryTechnology: {
			{Title: "Беспроводные наушники", Description: "Компактные наушники с шумоподавлением и кейсом.", Why: "Техника на каждый день, уместная в любом кармане.", Tags: []string{"техника", "аудио"}},
			{Title: "Смарт-часы", Description: "Следят за активностью, сном и уведомлениями.", Why: "Практичный гаджет для того, кто живёт в телефоне.", Tags: []string{"техника", "гаджет"}},
			{Title: "Пауэрбанк", Description: "Ёмкая зарядка для телефона, планшета и наушников.", Why: "От запасной батареи ещё никто не отказывался.", Tags: []string{"техника", "дорога"}},
			{Title: "Механическая клавиатура", Description: "Тактильная клавиатура с подсветкой и сменными клавишами.", Why: "Превращает часы за компьютером в удовольствие.", Tags: []string{"техника", "рабочее место"}},
			{Title: "Умная колонка", Description: "Колонка с голосовым ассистентом для света и музыки.", Why: "Простой вход в умный дом.", Tags: []string{"техника", "дом"}},
			{Title: "Сеанс в VR-клубе", Description: "Подарочный сеанс в клубе виртуальной реальности.", Why: "Впечатление запоминается дольше, чем вещь.", Tags: []string{"техника", "впечатление"}},
		},
		CategorySports: {
			{Title: "Фитнес-браслет", Description: "Лёгкий браслет: шаги, пульс и тренировки.", Why: "Мотивация всегда на виду, прямо на запястье.", Tags: []string{"спорт", "гаджет"}},
			{Title: "Набор для йоги", Description: "Нескользящий коврик, ремень и пробковые блоки.", Why: "Сразу улучшает домашнюю практику.", Tags: []string{"спорт", "йога"}},
			{Title: "Термобутылка", Description: "Стальная бутылка, которая держит холод всю тренировку.", Why: "Спутник на каждый день для любого спортсмена.", Tags: []string{"спорт", "экипировка"}},
			{Title: "Беговой пояс", Description: "Узкий пояс для телефона, ключей и гелей.", Why: "Решает реальную проблему бегуна.", Tags: []string{"спорт", "бег"}},
			{Title: "Массажный ролик", Description: "Ролик для восстановления после тяжёлых тренировок.", Why: "Восстановление — то, что спортсмены себе не покупают.", Tags: []string{"спорт", "восстановление"}},
			{Title: "День на скалодроме", Description: "Вход и прокат снаряжения на скалодроме.", Why: "Новый вызов для того, кто любит движение.", Tags: []string{"спорт", "впечатление"}},
		},
		CategoryMusic: {
			{Title: "Виниловая пластинка", Description: "Любимый альбом на виниле.", Why: "Физическая музыка — самый красивый подарок.", Tags: []string{"музыка", "винил"}},
			{Title: "Bluetooth-колонка", Description: "Портативная колонка с насыщенным звуком.", Why: "Музыка поедет с ним куда угодно.", Tags: []string{"музыка", "аудио"}},
			{Title: "Билеты на концерт", Description: "Два билета на живое выступление.", Why: "Совместные впечатления лучше коробок с бантом.", Tags: []string{"музыка", "впечатление"}},
			{Title: "Набор гитариста", Description: "Струны, медиаторы, каподастр и тюнер в одной коробке.", Why: "Расходники, которые нужны гитаристу всегда.", Tags: []string{"музыка", "гитара"}},
			{Title: "Студийные наушники", Description: "Закрытые наушники с честным детальным звуком.", Why: "Любимые записи зазвучат по-новому.", Tags: []string{"музыка", "аудио"}},
			{Title: "Подписка на музыку", Description: "Несколько месяцев стриминга без рекламы.", Why: "Подарок, которым пользуются каждый день.", Tags: []string{"музыка", "подписка"}},
		},
		CategoryArt: {
			{Title: "Набор акварели", Description: "Профессиональные краски, кисти и фактурная бумага.", Why: "Хорошие материалы меняют ощущение от рисования.", Tags: []string{"искусство", "живопись"}},
			{Title: "Скетчбук и линеры", Description: "Скетчбук на плотной бумаге и набор линеров.", Why: "Открытое приглашение рисовать каждый день.", Tags: []string{"искусство", "рисование"}},
			{Title: "Мастер-класс по керамике", Description: "Занятие на гончарном круге для начинающих.", Why: "Творческая память плюс чашка, сделанная своими руками.", Tags: []string{"искусство", "впечатление"}},
			{Title: "Постер в раме", Description: "Печать работы художника, которым он восхищается.", Why: "Искусство на стене напоминает о дарителе каждый день.", Tags: []string{"искусство", "декор"}},
			{Title: "Набор для каллиграфии", Description: "Перья, тушь и прописи для практики.", Why: "Спокойное, затягивающее умение с нуля.", Tags: []string{"искусство", "ремесло"}},
			{Title: "Моментальная камера", Description: "Камера, печатающая фото размером с визитку.", Why: "Любая встреча превращается в сувенир.", Tags: []string{"искусство", "фото"}},
		},
	},
}
