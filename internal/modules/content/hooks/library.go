package hooks

// bankTemplates is the general hook library. Every placeholder used here is
// provided by DefaultContext.
var bankTemplates = []string{
	// problem / common solution
	"{{.problem}}. The easiest thing to do is {{.common_solution}}. But the reality is that's not always an option.",
	"{{.problem}}. Everyone tells you to {{.common_solution}}. But what if there's a better way?",
	"{{.problem}}. You've probably tried {{.common_solution}}. Here's why that might not work.",
	"{{.problem}}. And it's costing you more than you think.",
	"{{.problem}}? Stop trying to {{.common_solution}}.",
	"{{.problem}} is fixable. But not if you keep trying to {{.common_solution}}.",
	"If your plan for {{.topic}} is to {{.common_solution}}, watch this first.",
	"{{.problem}}. I used to {{.common_solution}} too. Here's what actually changed things for me.",
	"The advice to {{.common_solution}} sounds good. It just doesn't work when it matters.",
	"{{.problem}}. Nobody talks about what to do when you can't just {{.common_solution}}.",
	"'Just {{.common_solution}}.' Yeah, that's not going to cut it.",
	"{{.problem}}. There are {{.number}} things that work better than trying to {{.common_solution}}.",
	"{{.problem}} doesn't go away because you {{.common_solution}}.",
	"Before you {{.common_solution}}, try this.",
	"{{.problem}}. Here's the part nobody explains.",

	// misconception / truth
	"{{.misconception}}. But here's the truth that most people miss.",
	"{{.misconception}}. That's exactly backwards.",
	"{{.misconception}}. I thought so too, until I learned this.",
	"{{.misconception}}. Here's what I've seen actually work.",
	"The biggest lie about {{.topic}}? {{.misconception}}.",
	"Here's the truth about {{.topic}}: {{.truth}}.",
	"Nobody told me this about {{.topic}}: {{.truth}}.",
	"{{.truth}}. Let that sink in for a second.",
	"If you remember one thing about {{.topic}}, make it this: {{.truth}}.",
	"The thing that changed {{.topic}} for me: {{.truth}}.",
	"{{.misconception}}. The real answer is simpler.",
	"Unpopular opinion: {{.truth}}.",
	"Hot take on {{.topic}}: {{.truth}}.",
	"{{.misconception}}, and it's keeping them stuck.",
	"You've been told the wrong thing about {{.topic}}.",

	// pain point
	"If you're tired of {{.pain_point}}, this is for you.",
	"Are you {{.pain_point}}? You're not alone.",
	"Raise your hand if you know what it's like {{.pain_point}}.",
	"I spent years {{.pain_point}}. Here's what finally worked.",
	"{{.pain_point}} isn't a personality trait. It's a pattern you can change.",
	"Still {{.pain_point}}? Let's fix that.",
	"If {{.pain_point}} sounds familiar, keep watching.",
	"There's a reason you keep {{.pain_point}}.",
	"Stop {{.pain_point}}. Start here.",
	"This is for anyone who's ever been {{.pain_point}}.",

	// result / promise
	"Here's how to {{.result}}.",
	"Want to {{.result}}? Start with these {{.number}} things.",
	"{{.number}} ways to {{.result}}, starting today.",
	"In the next 60 seconds I'll show you how to {{.result}}.",
	"What if you could {{.result}} in the next {{.timeframe}}?",
	"Give me {{.timeframe}} and I'll show you how to {{.result}}.",
	"The fastest way to {{.result}} isn't what you think.",
	"You can {{.result}}. You just need a different approach.",
	"This is how {{.audience}} {{.result}}.",
	"I learned how to {{.result}} the hard way so you don't have to.",
	"Save this for the next time you need to {{.result}}.",
	"{{.number}} small shifts that helped me {{.result}}.",
	"If you want to {{.result}}, stop doing this one thing.",
	"Here's the simplest way to {{.result}} that nobody uses.",
	"Try this for {{.timeframe}} and watch what happens to your {{.topic}}.",

	// mistake
	"The biggest mistake people make with {{.topic}}? {{.mistake}}.",
	"Stop {{.mistake}}. It's killing your progress.",
	"I see this mistake all the time: {{.mistake}}.",
	"You're probably {{.mistake}} and don't even realize it.",
	"{{.number}} mistakes I made with {{.topic}} so you don't have to.",
	"If you're {{.mistake}}, this is your sign to stop.",
	"The #1 thing holding you back with {{.topic}}: {{.mistake}}.",
	"Most people fail at {{.topic}} for one reason: {{.mistake}}.",
	"I was {{.mistake}} for years. Don't be like me.",
	"Quit {{.mistake}}. Do this instead.",

	// topic-led / curiosity
	"Let's talk about {{.topic}}.",
	"Nobody talks about this side of {{.topic}}.",
	"What I wish someone told me about {{.topic}} ten years ago.",
	"{{.topic_title}}: the version nobody teaches you.",
	"Here's what {{.topic}} looks like in real life.",
	"If {{.topic}} has been on your mind lately, this one's for you.",
	"The {{.topic}} advice I'd give my younger self.",
	"Everything I know about {{.topic}} in under a minute.",
	"{{.number}} things about {{.topic}} I learned leading teams at work.",
	"I manage projects for a living. Here's what that taught me about {{.topic}}.",
	"This one habit changed how I think about {{.topic}}.",
	"{{.topic_title}} is a skill. Here's how to practice it.",
	"Why is {{.topic}} so hard? Let's break it down.",
	"The real reason {{.topic}} feels impossible.",
	"Here's a {{.topic}} framework you can use today.",
	"Let me save you years of figuring out {{.topic}}.",
	"What {{.audience}} know about {{.topic}} that you don't.",
	"{{.topic_title}} isn't about willpower.",
	"You don't need more motivation for {{.topic}}. You need this.",
	"Three words that changed my approach to {{.topic}}.",

	// question
	"What would change if you finally figured out {{.topic}}?",
	"Why do {{.audience}} still struggle with {{.topic}}?",
	"Ever wonder why {{.topic}} feels harder for you than everyone else?",
	"Be honest: how's your {{.topic}} right now?",
	"What if everything you know about {{.topic}} is wrong?",
	"Is {{.topic}} holding you back more than you think?",
	"Can I be real with you about {{.topic}}?",
	"Do you want the short answer or the real answer about {{.topic}}?",
	"Who else needs to hear this about {{.topic}}?",
	"How long are you going to keep {{.mistake}}?",

	// challenge / call-out
	"Here's your {{.timeframe}} {{.topic}} challenge.",
	"I dare you to try this for {{.timeframe}}.",
	"This is your reminder to {{.action}}.",
	"If you only watch one video about {{.topic}} this week, make it this one.",
	"Send this to the friend who needs to {{.action}}.",
	"Pause. Before you scroll, think about your {{.topic}}.",
	"Quick one for {{.audience}}: {{.truth}}.",
	"Your future self will thank you for learning this about {{.topic}}.",
	"Stop scrolling if you want to {{.result}}.",
	"Real talk about {{.topic}} from someone who's been there.",
}
