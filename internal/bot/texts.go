package bot

import "fmt"

// texts holds every reply in English and Chinese.
var texts = map[string][2]string{
	"help": {
		"🛰 Xallet, your Martian finance companion.\n\n" +
			"/stats: credits, rank and today's goals\n" +
			"/plan <income> [conservative|balanced|aggressive]: allocate and confirm today's savings plan\n" +
			"/progress [tier]: budget progress for this session\n" +
			"/claim: open the daily mystery box\n" +
			"/wardrobe, /buy <id>, /equip <id>\n" +
			"/milestone, /upgrade, /gender, /mbti <code>\n" +
			"/portfolio, /quote, /ask <question>, /draw <prompt>\n" +
			"/lang, /currency\n\n" +
			"Send a photo captioned \"expense\" or \"income\" to scan it, or \"draw <prompt>\" to redraw it.",
		"🛰 Xallet，你的火星财务伙伴。\n\n" +
			"/stats：积分、排名和今日目标\n" +
			"/plan <收入> [conservative|balanced|aggressive]：分配并确认今日储蓄计划\n" +
			"/progress [策略]：本次会话的预算进度\n" +
			"/claim：打开每日神秘盒\n" +
			"/wardrobe、/buy <id>、/equip <id>\n" +
			"/milestone、/upgrade、/gender、/mbti <代码>\n" +
			"/portfolio、/quote、/ask <问题>、/draw <描述>\n" +
			"/lang、/currency\n\n" +
			"发送带有 \"expense\"/\"支出\" 或 \"income\"/\"收入\" 说明的图片进行扫描，或用 \"draw <描述>\" 重绘图片。",
	},
	"stats": {
		"💳 Credits: %s\n🏆 Rank: %s\n🎫 Plan: %s\n\nToday:\n%s Earned\n%s Saved\n\n🧬 %s · %s (%s)\n👕 Wearing: %s",
		"💳 积分：%s\n🏆 排名：%s\n🎫 方案：%s\n\n今日：\n%s 已赚取\n%s 已储蓄\n\n🧬 %s · %s (%s)\n👕 穿戴：%s",
	},
	"rank_none":       {"unranked", "未上榜"},
	"nothing":         {"nothing", "无"},
	"claim_ready":     {"🎁 Both goals done, /claim your mystery box!", "🎁 两个目标均已完成，/claim 领取神秘盒！"},
	"wardrobe_header": {"👕 Wardrobe (balance %s)", "👕 衣橱（余额 %s）"},
	"wardrobe_hint":   {"/buy <id> to purchase, /equip <id> to wear or take off.", "/buy <id> 购买，/equip <id> 穿戴或卸下。"},
	"usage_buy":       {"Usage: /buy <item id>", "用法：/buy <物品 id>"},
	"usage_equip":     {"Usage: /equip <item id>", "用法：/equip <物品 id>"},
	"usage_plan":      {"Usage: /plan <monthly income> [conservative|balanced|aggressive]", "用法：/plan <月收入> [conservative|balanced|aggressive]"},
	"usage_mbti":      {"Usage: /mbti <code>, e.g. /mbti INTJ", "用法：/mbti <代码>，例如 /mbti INTJ"},
	"usage_ask":       {"Usage: /ask <question>", "用法：/ask <问题>"},
	"usage_draw":      {"Usage: /draw [1K|2K|4K] [1:1|16:9|9:16|4:3|3:4] <prompt>", "用法：/draw [1K|2K|4K] [1:1|16:9|9:16|4:3|3:4] <描述>"},
	"bought":          {"✅ %s is yours and equipped. Balance: %s", "✅ 已获得并穿戴 %s。余额：%s"},
	"equipped":        {"👕 %s equipped.", "👕 已穿戴 %s。"},
	"unequipped":      {"👕 %s taken off.", "👕 已卸下 %s。"},
	"err_credits":     {"❌ Not enough credits. %s costs %s, you have %s.", "❌ 积分不足。%s 需要 %s，你有 %s。"},
	"err_not_owned":   {"❌ You don't own that item yet.", "❌ 你还没有这件物品。"},
	"err_unknown":     {"❌ No such item. See /wardrobe.", "❌ 没有这件物品。查看 /wardrobe。"},
	"err_special":     {"❌ Special items can't be bought, they come from the daily mystery box.", "❌ 特殊物品无法购买，只能从每日神秘盒获得。"},
	"err_claim":       {"🔒 Complete both goals first: log an income (photo captioned \"income\") and confirm a /plan.", "🔒 请先完成两个目标：记录一笔收入（图片说明 \"收入\"）并确认 /plan。"},
	"err_tier":        {"❌ Unknown strategy. Use conservative, balanced or aggressive.", "❌ 未知策略。请使用 conservative、balanced 或 aggressive。"},
	"err_mbti":        {"❌ Unknown personality type.", "❌ 未知的人格类型。"},
	"err_internal":    {"❌ Something went wrong, try again.", "❌ 出现错误，请重试。"},
	"claimed_item":    {"🎁 Mystery box: %s! %s", "🎁 神秘盒：%s！%s"},
	"claimed_all":     {"🎁 You own the whole collection. Have %s instead.", "🎁 你已集齐全部物品，改为奖励 %s。"},
	"milestone_open":  {"🏅 Milestone unlocked! %s credits, rank #%d. Your limited TEE is ready.", "🏅 里程碑已解锁！%s 积分，排名 #%d。限量 TEE 已就绪。"},
	"milestone_lock":  {"🔒 Milestone: reach %s credits and top %d. Now: %s credits, rank %s.", "🔒 里程碑：达到 %s 积分并进入前 %d。当前：%s 积分，排名 %s。"},
	"upgraded":        {"💎 Premium activated. %s", "💎 已开通高级版。%s"},
	"already_premium": {"💎 You are already premium.", "💎 你已经是高级用户。"},
	"gender":          {"🧬 Companion is now %s.", "🧬 伙伴已切换为 %s。"},
	"mbti":            {"🧬 Personality set to %s.", "🧬 人格已设为 %s。"},
	"plan": {
		"📊 %s plan for %s\n\n📈 Invest %d%%: %s\n⚙️ Operations %d%%: %s\n🏦 Savings %d%%: %s\n\n%s\n\n✅ Savings plan confirmed for today.",
		"📊 %s 方案，收入 %s\n\n📈 投资 %d%%：%s\n⚙️ 运营 %d%%：%s\n🏦 储蓄 %d%%：%s\n\n%s\n\n✅ 今日储蓄计划已确认。",
	},
	"progress": {
		"📒 Operations budget %s\nSpent %s (%s%%), remaining %s\n\n💰 Revenue %s of %s investment target (%s%%)\nReceipts: %d · Incomes: %d",
		"📒 运营预算 %s\n已支出 %s（%s%%），剩余 %s\n\n💰 收入 %s / 投资目标 %s（%s%%）\n票据：%d · 收入记录：%d",
	},
	"portfolio":    {"💼 Total balance: %s (%s%% 24h)", "💼 总资产：%s（24h %s%%）"},
	"lang":         {"🌐 Language: English", "🌐 语言：中文"},
	"currency":     {"💱 Currency: %s", "💱 货币：%s"},
	"scan_wait":    {"🔍 Analyzing…", "🔍 分析中…"},
	"scan_caption": {"Caption the photo with \"expense\" or \"income\".", "请为图片添加 \"expense\"/\"支出\" 或 \"income\"/\"收入\" 说明。"},
	"expense_ok":   {"🧾 %s · %s · %s\nRecorded to the operations budget. %s", "🧾 %s · %s · %s\n已记入运营预算。%s"},
	"income_ok":    {"💰 %s · %s · %s\nRevenue recorded. %s, rank %s.", "💰 %s · %s · %s\n收入已记录。%s，排名 %s。"},
	"ai_auth":      {"🔑 The AI key is missing or was reset. Ask the operator to reconnect it.", "🔑 AI 密钥缺失或已重置，请联系管理员重新连接。"},
	"ai_timeout":   {"⏳ The AI took too long. Try again.", "⏳ AI 响应超时，请重试。"},
	"ai_malformed": {"🤷 Couldn't read that. Try a clearer photo.", "🤷 无法识别，请换一张更清晰的图片。"},
	"ai_down":      {"📡 Sorry, error analyzing market data.", "📡 抱歉，分析市场时出现错误。"},
	"edit_wait":    {"🎨 Redrawing…", "🎨 重绘中…"},
	"usage_edit":   {"Caption the photo with: draw <what to change>", "请为图片添加说明：draw <修改内容>"},
	"studio_off":   {"🎨 The studio is disabled.", "🎨 工作室已关闭。"},
	"rate_limited": {"🐢 Slow down a little.", "🐢 请慢一点。"},
}

// t renders the text key in lang with args.
func t(lang, key string, args ...any) string {
	pair, ok := texts[key]
	if !ok {
		return key
	}
	s := pair[0]
	if lang == langCN {
		s = pair[1]
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
