package giftgen

import (
	"math/rand"
	"sync"
	"time"
)

// OfflinePool is the curated, deterministic idea source used when generation
// is unavailable or when the offline endpoint is called directly.
type OfflinePool struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewOfflinePool() *OfflinePool {
	return NewOfflinePoolWithSeed(time.Now().UnixNano())
}

func NewOfflinePoolWithSeed(seed int64) *OfflinePool {
	return &OfflinePool{rng: rand.New(rand.NewSource(seed))}
}

// Draw returns IdeaCount distinct ideas from the pool for lang, in random
// order. Unknown languages fall back to Russian.
func (p *OfflinePool) Draw(lang string) []Idea {
	pool, ok := offlineIdeas[lang]
	if !ok {
		pool = offlineIdeas["ru"]
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	picks := p.rng.Perm(len(pool))
	count := IdeaCount
	if count > len(pool) {
		count = len(pool)
	}

	ideas := make([]Idea, 0, count)
	for _, i := range picks[:count] {
		idea := pool[i]
		idea.Tags = append([]string(nil), idea.Tags...)
		ideas = append(ideas, idea)
	}
	return ideas
}

// Result wraps a draw in the standard response shape with offline metadata.
func (p *OfflinePool) Result(lang string) Result {
	return Result{
		Ideas: p.Draw(lang),
		Meta: Meta{
			Source:   "offline",
			Model:    "offline",
			Currency: "KZT",
			Locale:   Locale(lang),
		},
	}
}

var offlineIdeas = map[string][]Idea{
	"en": {
		{Title: "Scented Candle Set", Description: "Three soy candles with warm seasonal scents.", Why: "A safe, cozy gift that suits almost anyone.", PriceHintKZT: "3000–6000", Tags: []string{"home", "cozy"}},
		{Title: "Board Game", Description: "A modern party game for four to eight players.", Why: "Gives the whole family an evening together.", PriceHintKZT: "8000–15000", Tags: []string{"games", "family"}},
		{Title: "Thermo Mug", Description: "Leak-proof mug that keeps coffee hot for six hours.", Why: "Useful every single morning.", PriceHintKZT: "4000–9000", Tags: []string{"daily", "coffee"}},
		{Title: "Photo Album", Description: "A hand-bound album for printed memories.", Why: "Printed photos are rare enough to feel precious.", PriceHintKZT: "5000–10000", Tags: []string{"memory", "craft"}},
		{Title: "Gourmet Tea Box", Description: "A sampler of twelve loose-leaf teas.", Why: "A small ceremony for every evening.", PriceHintKZT: "4000–8000", Tags: []string{"food", "tea"}},
		{Title: "Cozy Blanket", Description: "An oversized knit blanket for the sofa.", Why: "Comfort is never the wrong size.", PriceHintKZT: "9000–18000", Tags: []string{"home", "cozy"}},
		{Title: "Desk Plant", Description: "A low-maintenance succulent in a ceramic pot.", Why: "Brightens a workspace without asking much.", PriceHintKZT: "2000–5000", Tags: []string{"home", "plants"}},
		{Title: "Book Gift Card", Description: "A card for their favorite bookstore.", Why: "Lets a reader choose their own adventure.", PriceHintKZT: "5000–15000", Tags: []string{"books", "card"}},
	},
	"ru": {
		{Title: "Набор ароматических свечей", Description: "Три соевые свечи с тёплыми сезонными ароматами.", Why: "Уютный подарок, который подходит почти всем.", PriceHintKZT: "3000–6000", Tags: []string{"дом", "уют"}},
		{Title: "Настольная игра", Description: "Современная игра для компании от четырёх человек.", Why: "Дарит семье целый вечер вместе.", PriceHintKZT: "8000–15000", Tags: []string{"игры", "семья"}},
		{Title: "Термокружка", Description: "Непроливающаяся кружка, держит кофе горячим шесть часов.", Why: "Полезна каждое утро без исключений.", PriceHintKZT: "4000–9000", Tags: []string{"быт", "кофе"}},
		{Title: "Фотоальбом", Description: "Альбом ручной работы для напечатанных воспоминаний.", Why: "Напечатанные фото стали редкостью — тем они ценнее.", PriceHintKZT: "5000–10000", Tags: []string{"память", "ремесло"}},
		{Title: "Чайный набор", Description: "Дюжина листовых чаёв для знакомства.", Why: "Маленькая церемония на каждый вечер.", PriceHintKZT: "4000–8000", Tags: []string{"еда", "чай"}},
		{Title: "Плед крупной вязки", Description: "Большой вязаный плед для дивана.", Why: "Уют не бывает неправильного размера.", PriceHintKZT: "9000–18000", Tags: []string{"дом", "уют"}},
		{Title: "Растение для стола", Description: "Неприхотливый суккулент в керамическом горшке.", Why: "Оживляет рабочее место и ничего не требует.", PriceHintKZT: "2000–5000", Tags: []string{"дом", "растения"}},
		{Title: "Сертификат в книжный", Description: "Карта любимого книжного магазина.", Why: "Читатель сам выберет своё приключение.", PriceHintKZT: "5000–15000", Tags: []string{"книги", "сертификат"}},
	},
}
