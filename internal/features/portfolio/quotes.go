package portfolio

import "time"

// Quote is a bilingual line shown under the balance.
type Quote struct {
	EN string
	CN string
}

// In returns the quote in lang, English unless lang is "cn".
func (q Quote) In(lang string) string {
	if lang == "cn" {
		return q.CN
	}
	return q.EN
}

// Quotes rotate by day of month.
var Quotes = []Quote{
	{EN: "Silver moonlight is refactoring the order of the day.", CN: "银色月光正在重构白天的秩序。"},
	{EN: "In the dust of 2026, liquidity is life.", CN: "在2026的尘埃中，流动性就是生命。"},
	{EN: "Neural link established, downloading future compound interest.", CN: "神经连接已建立，正在下载未来的复利。"},
	{EN: "Silver is the only hard currency to the new Martian order.", CN: "白银是通往火星新秩序的唯一硬通货。"},
	{EN: "Volatility is not risk, but the premium of cognition.", CN: "波动并非风险，而是认知的溢价。"},
	{EN: "Don't build your financial fortress on the ruins of the old world.", CN: "不要在旧世界的废墟上建立你的财务堡垒。"},
	{EN: "Every hash carries the weight of civilization.", CN: "每一个哈希值都承载着文明的重量。"},
}

// DailyQuote is stable for a whole calendar day.
func DailyQuote(t time.Time) Quote {
	return Quotes[t.Day()%len(Quotes)]
}
