package sys

// Canonical default template sets. Auto-heal replaces a stored set with
// these whenever its structural contract is violated.

// DefaultEnjoyMessages are the 50 rotating thank-you templates served by
// /enjoy. Every template mentions (user); most point at #vouch and #casino.
var DefaultEnjoyMessages = []string{
	"✅ Thanks for ordering, (user)! Enjoy your meal 🍔 Don’t forget to vouch in #vouch for points—redeem for free food or gamble in #casino 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🚀 Order’s in, (user)! Feast mode ON 😋 Drop a vouch in #vouch to stack points → free orders or casino wins 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍽️ Dig in, (user)! Be sure to post in #vouch for reward points 🎟️ Redeem for free eats or take your shot in #casino 🃏 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🎊 Appreciate you, (user)! Enjoy your GUHDeats 🍕 Earn points by vouching in #vouch then try your luck in #casino 🎲 STILL GUHHD with GUHDeats 💪",
	"✨ Enjoy every bite, (user) 😍 A quick vouch in #vouch = points toward free orders & casino plays 💎 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🥳 Thanks for riding with us, (user)! After your meal, vouch in #vouch for points → free meals or big wins in #casino 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍔🍟 Chow time, (user)! Earn points by dropping a vouch in #vouch → redeem or gamble in #casino 🔥 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"⚡ Enjoy your GUHDeats drop, (user)! Share a vouch in #vouch for points & hit #casino to spin 🎲 STILL GUHHD with GUHDeats 💪",
	"💯 Appreciate your order, (user)! Every vouch in #vouch = points 🪙 Free food or double down in #casino ♠️ Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍴 Cravings crushed, (user)! Don’t forget to vouch in #vouch → stack points, redeem, or gamble 💫 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🥢 Meal delivered 🥡, (user)! Vouch in #vouch for points → use for free eats or casino fun 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🏆 You’re a winner already, (user)! Thanks for ordering 💎 Drop a vouch in #vouch to claim points & play in #casino 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍕🍔 Hot & ready, (user)! Enjoy 😋 Then vouch in #vouch → free orders or a casino jackpot 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🔥 Order locked in, (user)! Enjoy your food and vouch in #vouch for points → gamble them in #casino 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🎶 Dinner vibes active 😎, (user)! Drop a vouch in #vouch → earn points & spin the games in #casino 🃏 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"💥 Thanks for rolling with GUHDeats, (user)! Enjoy your food & claim points in #vouch → jackpot awaits in #casino 🎰 STILL GUHHD with GUHDeats 💪",
	"🥤 Sip back, relax, (user) 🍔 Don’t forget to vouch in #vouch for points → redeem or risk in #casino 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🌟 Enjoy your GUHDeats, (user)! Collect points in #vouch → freebies OR roulette, blackjack, slots in #casino 💎 STILL GUHHD with GUHDeats 💪",
	"🕹️ Level up, (user)! Food’s here 🍕 Bonus points waiting in #vouch → free orders or casino action 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍜 Slurp it up, (user)! Post your vouch in #vouch to stack points → gamble them in #casino 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🚨 GUHDeats complete ✅, (user)! Enjoy & vouch in #vouch → rewards or casino wins 🎰 STILL GUHHD with GUHDeats 💪",
	"🍴 Bon appétit, (user) 😍 Don’t miss your vouch in #vouch → points = free orders or casino shots 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🥂 Cheers to you, (user)! Thanks for ordering 🥳 Vouch in #vouch to stack points & gamble in #casino 🃏 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🤑 Rack up, (user)! Enjoy your food & vouch in #vouch → points for free meals or casino play 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🎯 Mission complete, (user)! Food delivered ✅ Vouch in #vouch for points → spend or spin 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🧃 Refresh & feast 😋, (user)! Drop a vouch in #vouch → free orders or casino jackpots 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🛎️ Your food’s in, (user)! Earn points by vouching in #vouch → free meals or casino fun 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍔💨 Fast food, faster rewards, (user)! Don’t forget #vouch → free eats or casino thrills 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🌈 Taste the win, (user)! Vouch in #vouch for points → redeem or risk them in #casino 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🎁 Big thanks, (user)! Enjoy your GUHDeats & vouch in #vouch → free meals or casino jackpots 💎 STILL GUHHD with GUHDeats 💪",
	"💌 Thanks a bunch, (user)! Enjoy your order 💫 Don’t forget: vouch in #vouch to stack points & roll the dice in #casino 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🥳 Food secured, (user)! Feast away 😋 Vouch in #vouch for reward points → gamble or redeem 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🔑 Unlock rewards, (user)! Enjoy your food & claim points in #vouch → spend or spin them in #casino 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍟 Fries hot, vibes hotter, (user)! Vouch in #vouch for points → free eats or jackpot chances 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🥤 Sip + snack = win, (user)! Be sure to vouch in #vouch → collect points, redeem, or risk 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🏅 You’re VIP, (user)! Thanks for ordering 🎉 Earn points by vouching in #vouch → play them in #casino 🃏 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍴 Feast mode engaged, (user)! Vouch in #vouch for points toward free meals or casino fun 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🔔 Ding ding, order’s here, (user)! Enjoy + vouch in #vouch → stack rewards & gamble 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"✌️ Big ups, (user)! Enjoy your GUHDeats & earn by vouching in #vouch → points = food or casino shots 🎲 STILL GUHHD with GUHDeats 💪",
	"🎨 Flavor unlocked, (user)! Post your vouch in #vouch → redeem or risk it in #casino 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🧨 Boom! Order’s dropped, (user)! Enjoy & vouch in #vouch → rack points, play in #casino 🔥 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍔 Hungry no more, (user)! Thanks for choosing GUHDeats 🙌 Don’t forget to vouch in #vouch → stack rewards 🎲 STILL GUHHD with GUHDeats 💪",
	"🌟 Meal vibes strong, (user)! Drop a vouch in #vouch → points for free orders or casino jackpots 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🥢 Fresh eats delivered, (user)! Vouch in #vouch → free meals or risk it all in #casino 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🍩 Sweet win, (user)! Enjoy & don’t miss your vouch in #vouch → gamble points in #casino 🃏 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🚦 Green light to eat, (user)! Chow down 😋 Vouch in #vouch for points → freebies or casino 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"📦 Delivery complete, (user)! Enjoy + earn points with a quick vouch in #vouch → redeem or spin 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"💫 Thanks for choosing us, (user)! Drop a vouch in #vouch to unlock free orders or casino games 🎡 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🎉 Party plate unlocked, (user)! Enjoy & vouch in #vouch → rewards or gamble in #casino 🎰 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
	"🔥 Feast up, (user)! Your meal’s ready—don’t forget to vouch in #vouch → stack points & try your luck 🎲 Thanks for choosing GUHDeats! STILL GUHHD with GUHDeats 💪",
}

// DefaultWelcomeMessages greet new members, rotating in order.
var DefaultWelcomeMessages = []string{
	"🎉 Welcome to GUHD EATS, (user)! We do 50% off Uber Eats—check out the casino channels and hit /daily (chances go up with orders!).",
	"🍔 Glad you joined GUHD EATS, (user)! Enjoy 50% off Uber Eats, explore the casino, and grab /daily every day—your odds rise with each order.",
	"💫 Big welcome, (user)! Dive into 50% off Uber Eats deals, visit the casino rooms, and be sure to run /daily (better odds when you order).",
	"🎰 Hey (user), welcome aboard! Snag 50% off Uber Eats, roll into the casino, and tap /daily—the chances keep climbing with orders.",
	"🚀 Stoked to have you, (user)! Remember: 50% off Uber Eats, casino fun waiting, and /daily gets sweeter as you place orders.",
}

// TimeOfDaySnippets hold one auxiliary welcome line per time slot, drawn
// uniformly at random.
var TimeOfDaySnippets = map[string][]string{
	"morning": {
		"☀️ Early bird energy! Pair your first /daily spin with a breakfast steal.",
		"🌞 Sunrise special—line up an order now and watch those /daily odds grow.",
	},
	"afternoon": {
		"🌤️ Midday munchies? Queue a lunch order for that extra /daily boost.",
		"🍽️ Perfect time for a double-dip: place an order and smash /daily!",
	},
	"evening": {
		"🌙 Prime dinner time—keep the casino buzzing after you run /daily.",
		"🍝 Night crowd's rolling—grab your 50% off bite and cash in on /daily.",
	},
	"overnight": {
		"🌌 Late-night cravings hit different. Tap /daily and ride the lucky streak.",
		"🦉 Night owl status unlocked—orders now supercharge your /daily chances.",
	},
}

// MemberCountSnippets celebrate the member milestone; {count} is replaced
// with the formatted guild member count.
var MemberCountSnippets = []string{
	"You're member #{count} sliding in—let's make it legendary!",
	"Lucky #{count}! Ping a provider if you want help snagging that first order.",
	"Crew count just hit #{count}! Drop into the casino and say hi.",
}

// RolloutSnippets close out every welcome message.
var RolloutSnippets = []string{
	"🎟️ Need a plug? Pop a ticket anytime—mods are on standby.",
	"🎲 Feeling bold? Casino jackpots hit different after a fresh order.",
	"📈 Orders = better /daily luck. Stack them and flex in #vouch.",
	"🛎️ Questions about 50% off? Staff are one ping away.",
	"💬 Jump into chat and let folks know what you're craving tonight!",
}
