package allocation

// Advice is the explanation shown next to a plan.
type Advice struct {
	Logic    string
	Feedback string
}

var advice = map[string]map[Tier]Advice{
	"en": {
		Conservative: {
			Logic:    "Prioritize survival in 2026. Suggest 30% savings and high allocation for operational stability. Only 20% in proven hard assets.",
			Feedback: "You are prioritizing fortress-level safety. Ideal for 2026 regime changes, but risk missing the Silver supercycle.",
		},
		Balanced: {
			Logic:    "Optimal balance for 2026 order re-sorting. 35% in assets like Silver hedge against inflation while 20% ensures a safety buffer.",
			Feedback: "You have achieved Martian equilibrium. Your posture is perfectly synced with the current 2026 neural re-ordering.",
		},
		Aggressive: {
			Logic:    "2026 is a decade of high volatility. Suggest 50% Investment to maximize returns on Silver/Crypto breakouts while keeping Ops lean.",
			Feedback: "Maximum thrust detected. You are betting heavily on the new order assets. Ensure your liquid buffer covers 3 lunar cycles.",
		},
	},
	"cn": {
		Conservative: {
			Logic:    "在秩序剧变中，生存优于增长。建议每笔收入保留 30% 现金储蓄，50% 投入日常稳定运营，仅将 20% 用于波动性硬资产。",
			Feedback: "您的姿态极其保守。在2026年的秩序剧变中，您拥有极高的生存概率，但可能会错过资产重估的最佳红利期。",
		},
		Balanced: {
			Logic:    "2026 年秩序重排的最优平衡。35% 配置白银等资产对冲通胀，20% 作为安全缓冲。",
			Feedback: "您已达成火星均衡。您的姿态与 2026 年的神经重排完美同步。",
		},
		Aggressive: {
			Logic:    "2026 是高波动性的十年。建议每挣一笔钱拿出 50% 进行投资（尤其配置白银和优质加密资产），仅维持 40% 运营开支，最大化复利。",
			Feedback: "侦测到高强度扩张姿态。您正全力押注新金融秩序资产，建议确保您的流动性储备能覆盖至少 3 个月的紧急运营。",
		},
	},
}

// AdviceFor returns the tier explanation in lang, English when lang is unknown.
func AdviceFor(t Tier, lang string) Advice {
	byTier, ok := advice[lang]
	if !ok {
		byTier = advice["en"]
	}
	return byTier[t]
}
