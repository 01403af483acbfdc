package reply

// Template pools for acknowledgments. {AMT} and {CAT} are substituted with
// the formatted amount and the escaped lower-cased category.

var addNormal = []string{
	"Okay lah! {AMT} for {CAT} masuk liao ✅",
	"Recorded! {CAT} — {AMT}. Steady bompi-pi 💪",
	"Auntie write down already: {CAT} {AMT} ✍️",
	"Noted ah! {AMT} for {CAT}. Don't later say forget 😜",
	"Ka-ching! {CAT} at {AMT}. Wallet still breathing? 💸",
	"Shiok ah, {CAT} {AMT}. Small small also must track 👍",
	"Add done: {CAT} — {AMT}. You very on today!",
	"Auntie file inside liao: {AMT} {CAT} 🗂️",
	"Registered hor: {AMT} for {CAT} ✅",
	"Swee! {CAT} {AMT}. Keep the habit going 👏",
	"Mark down liao: {CAT} {AMT}. On track ah 🚶",
	"Settle! {CAT} {AMT}. Solid like MRT timing 🚈",
}

var addHigh = []string{
	"Wah {AMT} for {CAT}? Today treat yourself ah 🤭",
	"Oof, {AMT} on {CAT}. Heart pain a bit or not? 🫣",
	"Aiyo {AMT}! {CAT} premium version issit? 😅",
	"Steady lah big spender — {CAT} {AMT} 💼",
	"High SES vibes detected: {AMT} for {CAT} ✨",
	"Auntie faint a bit but record already: {AMT} {CAT} 😵‍💫",
	"Wallet say \"eh bro…\" — {AMT} {CAT} 😂",
	"Ok lah, sometimes must enjoy — {CAT} {AMT} 🌟",
	"Uncle hear also stunned: {AMT} for {CAT} 😳",
	"Luxury mode ON — {CAT} {AMT} 👜",
	"Your card crying softly: {AMT} on {CAT} 😭",
	"Wallet perspiring — {AMT} for {CAT} 🥵",
}

var addUltra = []string{
	"WAH LAO {AMT} for {CAT}?! Auntie need to sit down first 🪑",
	"Bank manager wave also cannot stop you: {AMT} {CAT} 🏦",
	"Confirm VIP already — {CAT} {AMT} 👑",
	"This one thunderclap spend ah: {AMT}! {CAT} ⚡",
	"Are you buying the shop or the {CAT}? {AMT} 😅",
	"Auntie record liao, but your wallet send SOS 📡 — {AMT} {CAT}",
	"Big dragon spend spotted: {AMT} {CAT} 🐉",
	"Legendary purchase unlocked: {CAT} {AMT} 🏆",
	"Wallet ICU level: {AMT} {CAT} 🏥",
	"Siao liao, {AMT} for {CAT}. But Auntie proud you track 👍",
	"Auntie salute — {AMT} on {CAT}. Discipline still solid 🫡",
	"Boss level purchase — {CAT} {AMT} 👔",
}

// Streak lines, appended when three or more entries land on the same day.
var todaySpice = []string{
	"Third one today ah! Auntie impressed with your logging 📒",
	"Wah today very busy with the wallet hor 👀",
	"On fire today sia — the tracking, not the spending hor 🔥",
	"Auntie see you very diligent today. Keep going!",
	"One more today and Auntie give you gold star ⭐",
	"Today your ledger damn happening 📈",
}

var summaryWeekHeaders = []string{
	"📅 *This week's damage report:*",
	"📅 *Auntie's weekly tally:*",
	"📅 *Week so far, dear:*",
	"📅 *Your week in dollars:*",
	"📅 *Weekly round-up, fresh from Auntie's book:*",
}

var summaryMonthHeaders = []string{
	"🗓️ *This month's grand total coming up:*",
	"🗓️ *Auntie's monthly accounting:*",
	"🗓️ *Month so far, dear:*",
	"🗓️ *Your month in dollars:*",
	"🗓️ *Monthly round-up, fresh from Auntie's book:*",
}

var summaryFooters = []string{
	"Save a bit more next time ok? 💪",
	"Money don't grow on trees one hor 🌳",
	"Track already then can plan. Jiayou!",
	"Auntie watching your wallet for you 👀",
	"Spend smart, live shiok 😎",
}

var listHeaders = []string{
	"🧾 *Your last few records:*",
	"🧾 *Auntie flip the book for you:*",
	"🧾 *Most recent ones first ah:*",
	"🧾 *Here's what you logged lately:*",
}

var undoLines = []string{
	"Undo liao! {AMT} for {CAT} gone from the book 🧽",
	"Ok ok, Auntie erase {CAT} {AMT} already ✂️",
	"Removed! {AMT} {CAT} like never happen 🪄",
	"Last one cancelled: {CAT} {AMT}. Steady ah 👍",
	"Auntie tear out that page: {AMT} for {CAT} 🗑️",
}

var tips = []string{
	"💡 Kopi at home a few times a week — the savings add up one.",
	"💡 Wait 24 hours before big purchases. Still want? Then buy lah.",
	"💡 Set aside savings first, spend what's left. Not the other way!",
	"💡 Cook more, dabao less. Wallet and body both happy.",
	"💡 Check your summary every Sunday — small habit, big difference.",
	"💡 Cancel the subscriptions you forgot about. Go check now!",
	"💡 Bring water bottle out. Every drink bought is a few dollars gone.",
	"💡 Grocery list before supermarket, otherwise anyhow buy.",
}
