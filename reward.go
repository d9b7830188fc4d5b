package bubble

import "strconv"

const (
	rewardBubbleWidth = 240
	rewardIconSize    = 28
	rewardPadding     = 16
)

var itemColors = map[ItemType]Color{
	ItemCoin:   {R: 1, G: 0.82, B: 0.2, A: 1},
	ItemGem:    {R: 0.35, G: 0.85, B: 1, A: 1},
	ItemCard:   {R: 0.75, G: 0.5, B: 1, A: 1},
	ItemChest:  {R: 0.7, G: 0.45, B: 0.2, A: 1},
	ItemEnergy: {R: 0.45, G: 1, B: 0.45, A: 1},
}

// itemColor returns the icon tint for t. Unknown types are grey.
func itemColor(t ItemType) Color {
	if c, ok := itemColors[t]; ok {
		return c
	}
	return Color{R: 0.6, G: 0.6, B: 0.6, A: 1}
}

// formatRewardRange renders "N" for fixed amounts and "min-max" otherwise.
func formatRewardRange(lo, hi int) string {
	if lo == hi {
		return strconv.Itoa(hi)
	}
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}

// rewardRow is one line of the reward bubble: an item icon and a count label.
type rewardRow struct {
	node  *Node
	icon  *Node
	label *Node

	itemType ItemType
	lo, hi   int
}

func newRewardRow(index int, font Font, textSize, rowHeight float64) *rewardRow {
	r := &rewardRow{
		node:  NewContainer("rewardRow" + strconv.Itoa(index)),
		icon:  NewSprite("icon", rewardIconSize, rewardIconSize, ColorWhite),
		label: NewText("count", "", font, textSize),
	}
	r.node.SetSize(rewardBubbleWidth-2*rewardPadding, rowHeight)
	r.icon.SetPosition(rewardIconSize/2, rowHeight/2)
	r.node.AddChild(r.icon)
	r.node.AddChild(r.label)
	return r
}

// Refresh shows itemType with a lo..hi count.
func (r *rewardRow) Refresh(itemType ItemType, lo, hi int) {
	r.itemType, r.lo, r.hi = itemType, lo, hi
	r.icon.Color = itemColor(itemType)
	r.label.SetText(formatRewardRange(lo, hi), r.label.Text.Size)
	r.label.SetPosition(rewardIconSize+8+r.label.Width/2, r.node.Height/2)
	r.node.SetActive(true)
}

// refreshRewardRows fills rows from stage: row 0 is the coin total and the
// drops follow directly, row i showing drop i-1. A guaranteed drop shows its count as the minimum, a
// chance drop shows zero. Rows without a drop are hidden, all of them when
// stage is nil.
func refreshRewardRows(rows []*rewardRow, stage *StageData) {
	if stage == nil {
		for _, r := range rows {
			r.node.SetActive(false)
		}
		return
	}
	if len(rows) == 0 {
		return
	}
	coins := stage.AllCoinsDrop()
	rows[0].Refresh(ItemCoin, coins, coins)

	for i := 1; i < len(rows); i++ {
		if i-1 >= len(stage.Drops) {
			rows[i].node.SetActive(false)
			continue
		}
		drop := stage.Drops[i-1]
		lo := 0
		if drop.Guaranteed() {
			lo = drop.Item.Count
		}
		rows[i].Refresh(drop.Item.Type, lo, drop.Item.Count)
	}
}
