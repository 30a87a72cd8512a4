package shop

// SellPricePercent is the fraction of the catalog price paid out when selling
// back to the shop, in percent. Proceeds are floored via integer math.
const SellPricePercent = 60

// Log messages
const (
	LogMsgPurchaseCalled = "Purchase called"
	LogMsgSellCalled     = "Sell called"
	LogMsgItemPurchased  = "Item purchased"
	LogMsgItemSold       = "Item sold"
)
