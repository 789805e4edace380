package tips

import "github.com/yungbote/reelcraft-backend/internal/domain/content"

// expertiseTips are drawn from the creator's own work managing projects and
// teams. They take precedence over sampleTips.
var expertiseTips = map[string][]content.Tip{
	"delegation skills": {
		tip("match the task to the person's growth edge",
			"Don't just delegate what you hate. [start B-roll] Match tasks to where someone's ready to stretch, not where they'll drown or coast. [end B-roll] That's how you build trust and capability at the same time."),
		tip("adjust your delivery to their personality",
			"[start B-roll] Some people need context and the why. Others just want the what and when. [end B-roll] How you deliver the ask matters as much as what you're asking for."),
		tip("be clear about authority and expectations",
			"Tell them exactly what decisions they can make without you. [start B-roll] Vague delegation creates confusion and kills momentum. [end B-roll] Clarity upfront saves everyone time later."),
		tip("follow up without micromanaging",
			"[start B-roll] Check in at agreed milestones, not every five minutes. [end B-roll] You're building capability, not babysitting. Trust the process you set up."),
		tip("own the outcome, share the credit",
			"When it goes well, shine the light on them. When it doesn't, that's on you as the leader. [start B-roll] That's how you build a team that runs through walls for you. [end B-roll]"),
	},
	"leadership skills": {
		tip("make the call, then explain",
			"In high-stakes environments, indecision costs more than a wrong decision. [start B-roll] Make the call with the info you have, then bring people along. [end B-roll] You can course-correct, but you can't lead from confusion."),
		tip("your energy sets the tone",
			"[start B-roll] If you're frantic, your team's frantic. If you're steady, they're steady. [end B-roll] You can't fake this - manage your state before you manage your team."),
		tip("build trust before you need it",
			"When the pressure hits, it's too late to build relationships. [start B-roll] Invest in your people when things are calm [end B-roll] so they trust you when things get rough."),
		tip("say the hard thing early",
			"[start B-roll] Address the issue when it's small, not when it's a crisis. [end B-roll] Real leaders don't avoid difficult conversations - they have them before they have to."),
		tip("develop your replacement",
			"Your job isn't to be irreplaceable. [start B-roll] It's to build someone who can do your job so you can do the next one. [end B-roll] That's how you actually move up."),
	},
	"career transitions": {
		tip("your old skills transfer, but not how you think",
			"[start B-roll] Don't throw away what you know. Figure out how it applies in the new context. [end B-roll] The skills transfer, but you have to translate them."),
		tip("expect to feel incompetent for a minute",
			"Going from expert to beginner is uncomfortable. [start B-roll] That feeling isn't failure, it's growth. [end B-roll] You're supposed to not know everything right away."),
		tip("build your network before you need a job",
			"[start B-roll] Relationships aren't transactions. [end B-roll] Start connecting with people in your target space now, not when you're desperate. Real networks take time."),
		tip("get clear on your non-negotiables",
			"Money? Time? Growth? [start B-roll] Know what you won't compromise on before you start negotiating. [end B-roll] Otherwise every offer looks good."),
		tip("don't wait for permission to pivot",
			"[start B-roll] Nobody's going to tap you on the shoulder and say 'it's time.' [end B-roll] You decide when you're ready. Then you figure out how."),
	},
	"managing stress": {
		tip("identify what you actually control",
			"[start B-roll] Stress comes from trying to control what you can't. [end B-roll] Make a list - what can you influence, what can't you? Focus your energy accordingly."),
		tip("build buffers before you need them",
			"In high-pressure jobs, you need margin built in. [start B-roll] Time buffers, energy buffers, financial buffers. [end B-roll] Stress hits hardest when you're running on empty."),
		tip("stress is information, not the enemy",
			"[start B-roll] Your stress is telling you something. [end B-roll] Listen to it. What's actually overwhelming you? Don't just push through - address the root."),
		tip("protect your recovery time",
			"You can sprint, but not forever. [start B-roll] Recovery isn't optional, it's strategic. [end B-roll] Guard your off time like it's part of the job - because it is."),
		tip("get real about what 'urgent' actually means",
			"[start B-roll] Not everything that feels urgent is urgent. [end B-roll] Learn to tell the difference. Real urgency is rare - manufactured urgency is everywhere."),
	},
	"building confidence": {
		tip("confidence comes from doing, not feeling",
			"[start B-roll] You're not going to feel ready. Do it anyway. [end B-roll] Confidence is built through evidence, and evidence comes from action."),
		tip("track your wins, especially the small ones",
			"Your brain forgets progress. [start B-roll] Write down what you accomplished, even the tiny stuff. [end B-roll] When doubt shows up, you've got receipts."),
		tip("stop waiting for external validation",
			"[start B-roll] If you need everyone's approval, you'll never move. [end B-roll] Build internal confidence - know your worth independent of other people's opinions."),
		tip("competence builds confidence, not the other way around",
			"Get good at something. [start B-roll] Real confidence comes from knowing you can deliver, not from affirmations. [end B-roll] Put in the reps."),
		tip("comparison will kill your confidence",
			"[start B-roll] You're comparing your behind-the-scenes to everyone else's highlight reel. [end B-roll] Stay in your lane. Focus on your own growth."),
	},
	"time management": {
		tip("protect your high-value hours",
			"[start B-roll] Figure out when you do your best thinking. [end B-roll] Guard those hours for your most important work. Don't waste them on meetings that could be emails."),
		tip("time block, don't just to-do list",
			"A to-do list tells you what. A time block tells you when. [start B-roll] If it's not on your calendar, it's not real. [end B-roll]"),
		tip("batch similar tasks together",
			"[start B-roll] Context switching kills productivity. [end B-roll] Group similar tasks - all your calls, all your deep work, all your admin. Your brain will thank you."),
		tip("build in buffer time",
			"Back-to-back meetings all day is a setup for failure. [start B-roll] Leave 15 minutes between commitments. [end B-roll] You need space to think and transition."),
		tip("say no to protect your yes",
			"[start B-roll] Every yes to something unimportant is a no to something that matters. [end B-roll] Be ruthless about what gets your time."),
	},
	"effective communication": {
		tip("lead with the bottom line",
			"Don't bury your point. [start B-roll] Start with what you need, then explain if needed. [end B-roll] Respect people's time - say it straight."),
		tip("match your communication to your audience",
			"[start B-roll] Executives want the headline. Your team wants the context. [end B-roll] Same message, different delivery. Know who you're talking to."),
		tip("listen to understand, not to respond",
			"If you're thinking about your response, you're not listening. [start B-roll] Hear them out fully before you speak. [end B-roll] Real communication is two-way."),
		tip("over-communicate in high-stakes situations",
			"[start B-roll] When the stakes are high, assume nothing is understood. [end B-roll] Repeat key points. Confirm understanding. Clarity saves crises."),
		tip("own your mistakes immediately",
			"If you mess up, say it fast. [start B-roll] Don't wait, don't spin, don't deflect. [end B-roll] Own it, fix it, move on. That's how you keep trust."),
	},
}
