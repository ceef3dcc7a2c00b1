package catalog

import "github.com/fardannozami/sparks/internal/domain"

// builtinTemplates is ordered by group, then by id. Assignment treats this
// order as priority, so new templates go at the end of their group.
var builtinTemplates = []domain.ChallengeTemplate{
	// Health & fitness
	{
		ID:          "hf001",
		Title:       "Go for a 2K Run",
		Short:       "Put on sports clothes, pick a route, and run at least 2 kilometers.",
		AreaTags:    []domain.Area{domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(20),
		Steps: []string{
			"Put on sports clothes and running shoes",
			"Check the route distance using a maps app (Strava works great)",
			"Stretch your legs before starting",
			"Run at least 2 kilometers",
			"Take a photo of yourself at the end",
		},
		AltID: alt("hf002"),
		FollowUp: []string{
			"How did it go?",
			"Would you recommend running to others?",
			"Did you enjoy this activity?",
		},
	},
	{
		ID:          "hf002",
		Title:       "Go for a 4K Run",
		Short:       "Level up - run at least 4 kilometers today.",
		AreaTags:    []domain.Area{domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Get ready with your running gear",
			"Stretch your legs properly before starting",
			"Run at least 4 kilometers",
			"Track your progress with a running app",
			"Cool down and stretch after",
		},
		AltID: alt("hf001"),
		FollowUp: []string{
			"How did it go compared to shorter runs?",
			"Would you run this distance again?",
		},
	},
	{
		ID:          "hf003",
		Title:       "Book a Gym Class",
		Short:       "Book a guided class at the gym for this week.",
		AreaTags:    []domain.Area{domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Search for gym classes near you",
			"Choose one: Spinning, HIIT, Zumba, Yoga, or Swimming",
			"Book a session for the closest possible day (within a week)",
			"Add it to your calendar",
			"Prepare your gym bag the night before",
		},
		AltID: alt("hf004"),
		FollowUp: []string{
			"Which class did you book?",
			"How did it feel trying something new?",
		},
	},
	{
		ID:          "hf004",
		Title:       "Book a Personal Trainer",
		Short:       "Book a session with a personal trainer at a gym.",
		AreaTags:    []domain.Area{domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Research personal trainers at gyms near you",
			"Check reviews or ask for recommendations",
			"Book an initial session",
			"Prepare questions about your fitness goals",
		},
		AltID: alt("hf003"),
		FollowUp: []string{
			"What did you learn from the trainer?",
			"Would you continue with personal training?",
		},
	},
	{
		ID:          "hf005",
		Title:       "Team Sport with a Friend",
		Short:       "Book a team sport activity and invite a friend to join.",
		AreaTags:    []domain.Area{domain.AreaHealth, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(120),
		Steps: []string{
			"Choose a sport: CrossFit, martial arts, volleyball, basketball, or tennis",
			"Find a place that offers sessions",
			"Book a spot for you and a friend",
			"Message your friend with the invite",
			"Confirm the date and time",
		},
		AltID: alt("hf006"),
		FollowUp: []string{
			"Which sport and friend did you choose?",
			"Would you do this again together?",
		},
	},
	{
		ID:          "hf006",
		Title:       "No Sugar for 24 Hours",
		Short:       "Starting now. No sugar. Nada. Zero. Be aware of everything you eat.",
		AreaTags:    []domain.Area{domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(1440),
		Steps: []string{
			"Commit to avoiding all sugar for the next 24 hours",
			"Check food labels before eating anything",
			"Replace sugary snacks with fruits or nuts",
			"Drink water when cravings hit",
			"Notice how you feel throughout the day",
		},
		FollowUp: []string{
			"Did you make it through without sugar?",
			"How did your energy levels feel?",
			"Would you try this regularly?",
		},
	},
	{
		ID:          "hf007",
		Title:       "Try 16-Hour Fasting",
		Short:       "Do not eat anything from midnight until 4pm. Water, tea, black coffee only.",
		AreaTags:    []domain.Area{domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(960),
		Steps: []string{
			"Stop eating after dinner the night before",
			"Fast from midnight until at least 4pm",
			"You can drink: water, tea, or black coffee",
			"Break your fast with something nutritious",
			"Notice how your body and mind feel",
		},
		FollowUp: []string{
			"How did you feel during the fast?",
			"Did you experience mental clarity?",
			"Would you incorporate fasting regularly?",
		},
	},
	// Family & friends
	{
		ID:          "fam001",
		Title:       "Reconnect with Family",
		Short:       "Reach out to a family member you have not talked to in a while.",
		AreaTags:    []domain.Area{domain.AreaSocial},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Think of the family member you have not been in touch with the longest",
			"Consider if you miss them or want to make up for past conflicts",
			"Send them a message or make a call",
			"Be genuine and open in your conversation",
		},
		AltID: alt("fam002"),
		FollowUp: []string{
			"How did it feel to reconnect?",
			"What did you talk about?",
			"Will you stay in touch more regularly?",
		},
	},
	{
		ID:          "fam002",
		Title:       "Surprise a Friend in Need",
		Short:       "Surprise a friend going through a rough time with a visit and small gift.",
		AreaTags:    []domain.Area{domain.AreaSocial},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Think of a friend who could use some support right now",
			"Choose a small gift: a book, cinema ticket, or their favorite treat",
			"Plan when you will surprise them with a visit",
			"Show up and spend quality time together",
		},
		AltID: alt("fam001"),
		FollowUp: []string{
			"Who did you surprise?",
			"How did they react?",
			"How did it make you feel?",
		},
	},
	{
		ID:          "fam003",
		Title:       "Game Night with Friends",
		Short:       "Organize a night with friends to cook, play games, or watch a movie.",
		AreaTags:    []domain.Area{domain.AreaSocial, domain.AreaCreativity},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Choose friends to invite",
			"Pick an activity: cooking together, board games, or movie night",
			"Set a date and time that works for everyone",
			"Plan the food and drinks",
			"Send out the invites!",
		},
		FollowUp: []string{
			"What activity did you choose?",
			"How many friends joined?",
			"Will you make this a regular thing?",
		},
	},
	{
		ID:          "fam004",
		Title:       "Lunch with a Colleague",
		Short:       "Invite a team member you do not know well for lunch or coffee.",
		AreaTags:    []domain.Area{domain.AreaSocial, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Think of a colleague you want to know better",
			"Send them a casual invite for lunch or coffee",
			"Choose a nice place to go",
			"Ask them about themselves beyond work",
			"Listen and find common interests",
		},
		AltID: alt("fam005"),
		FollowUp: []string{
			"Who did you invite?",
			"What did you learn about them?",
			"Will you stay connected?",
		},
	},
	{
		ID:          "fam005",
		Title:       "Try Something New Together",
		Short:       "Invite a friend to do something you have never done together.",
		AreaTags:    []domain.Area{domain.AreaSocial, domain.AreaCreativity},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Think of a friend who would be up for an adventure",
			"Choose something new: park workout, new cafe, board game, escape room",
			"Send them a message with your suggestion",
			"Pick a date and location",
			"Make it happen!",
		},
		AltID: alt("fam004"),
		FollowUp: []string{
			"What new activity did you try?",
			"Did you both enjoy it?",
			"What will you try next?",
		},
	},
	{
		ID:          "fam006",
		Title:       "Plan a Family Gathering",
		Short:       "Organize a family gathering or trip together.",
		AreaTags:    []domain.Area{domain.AreaSocial},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(1440),
		Steps: []string{
			"Decide who you want to bring together",
			"Choose a format: dinner, day trip, or longer vacation",
			"Pick a date that works for everyone",
			"Plan the logistics: location, food, activities",
			"Send out invites and confirmations",
		},
		FollowUp: []string{
			"What are you planning?",
			"Who is coming?",
			"When is it happening?",
		},
	},
	{
		ID:          "fam007",
		Title:       "Hike with Friends",
		Short:       "Invite friends for a hike to a new place.",
		AreaTags:    []domain.Area{domain.AreaSocial, domain.AreaNature, domain.AreaHealth},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Research hiking trails near you",
			"Pick one that suits your group fitness level",
			"Message at least one friend with your suggestion",
			"Set a date and meeting point",
			"Pack water, snacks, and good shoes",
		},
		FollowUp: []string{
			"Where did you hike?",
			"Who came along?",
			"Would you recommend the trail?",
		},
	},
	// Self-love
	{
		ID:          "sl101",
		Title:       "Self-Care Evening",
		Short:       "Plan a relaxing evening with music, candles, and a hot bath.",
		AreaTags:    []domain.Area{domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(15),
		Steps: []string{
			"Pick a day this week for your self-care evening",
			"Gather supplies: candles, bath products, relaxing music",
			"Order your favorite food for delivery",
			"Turn off your phone and enjoy the moment",
		},
		AltID: alt("sl102"),
		FollowUp: []string{
			"When will you have your relaxing time?",
			"How did it feel to prioritize yourself?",
		},
	},
	{
		ID:          "sl102",
		Title:       "Reading Hour",
		Short:       "Schedule time to read a book for at least 1 hour.",
		AreaTags:    []domain.Area{domain.AreaSelfLove, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(10),
		Steps: []string{
			"Choose a book you have been meaning to read",
			"Pick a time today or tomorrow",
			"Find a comfortable quiet spot",
			"Put your phone in another room",
			"Read for at least one full hour",
		},
		AltID: alt("sl101"),
		FollowUp: []string{
			"What book did you read?",
			"How did it feel to disconnect and read?",
		},
	},
	{
		ID:          "sl103",
		Title:       "Affirmation Practice",
		Short:       "You are enough. Say it, write it, believe it.",
		AreaTags:    []domain.Area{domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(20),
		Steps: []string{
			"Say out loud: \"I am enough and I am a beautiful person\"",
			"Write this affirmation on a piece of paper",
			"Put it somewhere you will see it every morning",
			"Commit to saying it each time you feel bad about yourself",
		},
		FollowUp: []string{
			"Where did you put your affirmation?",
			"How did it feel to say those words?",
		},
	},
	{
		ID:          "sl104",
		Title:       "Breathwork or Meditation",
		Short:       "Do breathwork or meditation for 20 minutes.",
		AreaTags:    []domain.Area{domain.AreaSelfLove, domain.AreaHealth},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Choose a guided app: Headspace, Calm, Insight Timer, or YouTube",
			"Find a quiet, comfortable space",
			"Set aside 20 minutes minimum",
			"Follow the guided session",
			"Notice how you feel before and after",
		},
		FollowUp: []string{
			"Which app or guide did you use?",
			"How do you feel now?",
			"Will you make this a habit?",
		},
	},
	{
		ID:          "sl105",
		Title:       "Three Qualities I Love",
		Short:       "Write down 3 qualities you like about yourself.",
		AreaTags:    []domain.Area{domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Find a quiet moment to reflect",
			"Write down 3 qualities you genuinely like about yourself",
			"For each one, write a sentence about what you appreciate",
			"Read them back to yourself with kindness",
		},
		FollowUp: []string{
			"What three qualities did you write?",
			"Was it easy or hard to find things you like?",
		},
	},
	{
		ID:          "sl106",
		Title:       "Declutter 5 Items",
		Short:       "Remove 5 items from your room that do not serve you anymore.",
		AreaTags:    []domain.Area{domain.AreaSelfLove, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Look around your room with fresh eyes",
			"Find 5 items you no longer need or use",
			"Decide: donate, recycle, or throw away",
			"Remove them from your space",
			"Notice how your room feels lighter",
		},
		FollowUp: []string{
			"What items did you remove?",
			"How does your space feel now?",
		},
	},
	{
		ID:          "sl107",
		Title:       "Set Your Boundaries",
		Short:       "Practice saying no to something you do not want to do.",
		AreaTags:    []domain.Area{domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(15),
		Steps: []string{
			"Think of times when you said yes but meant no",
			"Practice saying: \"Sorry, I don't want to do that\"",
			"Today, pause before agreeing to anything",
			"Ask yourself: Do I really WANT to do this?",
			"If not, politely decline",
		},
		FollowUp: []string{
			"Did you practice setting a boundary?",
			"How did it feel?",
			"What would you do differently?",
		},
	},
	// Career & purpose
	{
		ID:          "cp001",
		Title:       "Problems & Solutions",
		Short:       "Write 5 things that bother you in society, with potential solutions.",
		AreaTags:    []domain.Area{domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Sit down with paper and pen (no distractions)",
			"Write 5 things that bother you in society, work, or in general",
			"Next to each, write a potential solution",
			"Then write a job that could address each problem",
			"Reflect on which ones excite you most",
		},
		AltID: alt("cp002"),
		FollowUp: []string{
			"Did you finish the exercise?",
			"Can you imagine having a job in one of these areas?",
		},
	},
	{
		ID:          "cp002",
		Title:       "What Makes You Feel Alive",
		Short:       "List 10 moments when you felt most alive and time flew by.",
		AreaTags:    []domain.Area{domain.AreaFocus, domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Without overthinking, write down 10 moments you felt ALIVE",
			"Think: when did time fly? When did you feel joy, curiosity, or pride?",
			"Ask yourself: \"What moments made me forget to check my phone?\"",
			"Circle the top 3 that could potentially earn you money",
			"Reflect on patterns you notice",
		},
		AltID: alt("cp001"),
		FollowUp: []string{
			"What activities came up most?",
			"Which top 3 could you make money from?",
		},
	},
	{
		ID:          "cp003",
		Title:       "Job Satisfaction Survey",
		Short:       "Ask 5 people about their jobs and what they like or dislike.",
		AreaTags:    []domain.Area{domain.AreaFocus, domain.AreaSocial},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(15),
		Steps: []string{
			"Make a list of 5 people you can talk to",
			"Ask each: Do you like your job? What do you like/dislike? Why?",
			"Take notes on their answers",
			"Look for patterns and insights",
			"Decide who you will talk to first - today",
		},
		FollowUp: []string{
			"What did you learn from the conversations?",
			"Any surprising insights?",
		},
	},
	{
		ID:          "cp004",
		Title:       "Job Qualities Reflection",
		Short:       "Identify 3 qualities of your job you like and 3 you do not.",
		AreaTags:    []domain.Area{domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Think about your current job or studies",
			"Write 3 qualities you like most",
			"Write 3 qualities you do not like",
			"Write one thing you LOVE about it",
			"Consider what this tells you about your ideal work",
		},
		FollowUp: []string{
			"What patterns do you see?",
			"What does your ideal job look like?",
		},
	},
	{
		ID:          "cp005",
		Title:       "LinkedIn Outreach",
		Short:       "Message 3 people whose jobs interest you and ask to meet.",
		AreaTags:    []domain.Area{domain.AreaFocus, domain.AreaSocial},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Find 3 people on LinkedIn or Instagram with interesting jobs",
			"Write a personalized message to each",
			"Ask if they would be open to a brief chat",
			"Prepare questions you want to ask them",
			"Send the first message today",
		},
		FollowUp: []string{
			"Who did you reach out to?",
			"Did anyone respond?",
			"What do you hope to learn?",
		},
	},
	{
		ID:          "cp006",
		Title:       "Ikigai Exercise",
		Short:       "Discover your purpose by mapping what you love, are good at, and can earn from.",
		AreaTags:    []domain.Area{domain.AreaFocus, domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"List things you LOVE doing or are interested in",
			"List things you are GOOD AT",
			"List what you think the WORLD NEEDS",
			"List what you can get PAID FOR",
			"Look for overlaps - that is your Ikigai",
		},
		FollowUp: []string{
			"What did you discover about your Ikigai?",
			"What roles might fit your purpose?",
		},
	},
	{
		ID:          "cp007",
		Title:       "Send 5 Job Applications",
		Short:       "Apply to 5 jobs that align with your career goals.",
		AreaTags:    []domain.Area{domain.AreaFocus, domain.AreaMoney},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(120),
		Steps: []string{
			"Based on previous exercises, identify roles that fit you",
			"Search job boards for relevant positions",
			"Update your CV if needed",
			"Write tailored cover letters",
			"Submit at least 5 applications",
		},
		FollowUp: []string{
			"Which jobs did you apply for?",
			"How do you feel about taking this step?",
		},
	},
	// Romance
	{
		ID:          "rom001",
		Title:       "Dating Mindset Check",
		Short:       "Answer reflection questions about your approach to dating.",
		AreaTags:    []domain.Area{domain.AreaRomance, domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(120),
		Steps: []string{
			"Find a quiet space to reflect honestly",
			"Answer: How do you take care of yourself when stressed?",
			"Answer: What do you like about yourself that a partner should appreciate?",
			"Answer: Do you feel you can be your authentic self when dating?",
			"Answer: What is one boundary you would protect no matter what?",
		},
		FollowUp: []string{
			"What did you learn about yourself?",
			"Are you ready to date authentically?",
		},
	},
	{
		ID:          "rom002",
		Title:       "Night Out Challenge",
		Short:       "Go out with a friend and talk to at least 3 strangers you find interesting.",
		AreaTags:    []domain.Area{domain.AreaRomance, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Ask a friend to go out this weekend",
			"Choose a social place: bar, club, or event",
			"Your goal: talk to at least 3 new people",
			"Start conversations with compliments or simple questions",
			"Remember: you have nothing to lose by talking to them",
		},
		AltID: alt("rom003"),
		FollowUp: []string{
			"How many new people did you talk to?",
			"How did it feel stepping out of your comfort zone?",
		},
	},
	{
		ID:          "rom003",
		Title:       "Book Speed Dating",
		Short:       "Find and book a speed dating event for the earliest possible day.",
		AreaTags:    []domain.Area{domain.AreaRomance},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Search for speed dating events in your city",
			"Find one for the earliest possible date",
			"Book your spot",
			"Prepare some conversation starters",
			"Go with an open mind",
		},
		AltID: alt("rom002"),
		FollowUp: []string{
			"When is your speed dating event?",
			"How many people did you connect with?",
		},
	},
	{
		ID:          "rom004",
		Title:       "Install a Dating App",
		Short:       "Download a dating app right now and set a goal of one date every 2 weeks.",
		AreaTags:    []domain.Area{domain.AreaRomance},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(15),
		Steps: []string{
			"Choose an app: Hinge, Bumble, or OkCupid",
			"Download it now",
			"Create an authentic profile",
			"Add photos where you are genuinely smiling",
			"Set a goal: at least one date every 14 days",
		},
		FollowUp: []string{
			"Which app did you download?",
			"Did you set up your profile?",
		},
	},
	{
		ID:          "rom005",
		Title:       "Host a Singles Mixer",
		Short:       "Organize a house party where friends bring someone single you do not know.",
		AreaTags:    []domain.Area{domain.AreaRomance, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(1440),
		Steps: []string{
			"Pick a date for your party",
			"Invite your friends with one rule: bring someone single you do not know",
			"Create a theme or dress code to make it fun",
			"Plan activities: games, music, good food",
			"Aim for 10-12 people total",
		},
		FollowUp: []string{
			"When is the party?",
			"Did you meet anyone interesting?",
		},
	},
	{
		ID:          "rom006",
		Title:       "Partner Dance Class",
		Short:       "Book a partner dance class: Salsa, Swing, or Tango.",
		AreaTags:    []domain.Area{domain.AreaRomance, domain.AreaHealth, domain.AreaCreativity},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Search for partner dance classes near you",
			"Choose: Salsa, Swing, Tango, or Bachata",
			"Book a session for the earliest date",
			"Go alone - you will be paired with others",
			"Enjoy the shared activity and natural conversation",
		},
		FollowUp: []string{
			"Which dance did you choose?",
			"Did you meet anyone interesting?",
		},
	},
	{
		ID:          "rom007",
		Title:       "Creative Social Class",
		Short:       "Book a drawing, pottery, or creative class to meet new people.",
		AreaTags:    []domain.Area{domain.AreaRomance, domain.AreaCreativity, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Find a creative class: drawing, pottery, or painting",
			"Book a spot for the earliest possible date",
			"Go with the intention to socialize",
			"Start conversations with fellow students",
			"Enjoy the creative process together",
		},
		FollowUp: []string{
			"What class did you take?",
			"Did you make any connections?",
		},
	},
	// Fun & creativity
	{
		ID:          "fun001",
		Title:       "Outdoor Painting",
		Short:       "Buy painting supplies, go outside, and paint the scenery you see.",
		AreaTags:    []domain.Area{domain.AreaCreativity, domain.AreaNature},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(120),
		Steps: []string{
			"Get supplies: canvas, paints, brushes",
			"Find a scenic spot outdoors",
			"Set up and observe the scenery",
			"Let your imagination flow as you paint",
			"Add special patterns or shapes that speak to you",
		},
		AltID: alt("fun002"),
		FollowUp: []string{
			"What did you paint?",
			"Would you try painting again?",
		},
	},
	{
		ID:          "fun002",
		Title:       "Book a Painting Class",
		Short:       "Sign up for a painting class in your city.",
		AreaTags:    []domain.Area{domain.AreaCreativity, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(120),
		Steps: []string{
			"Search for painting classes near you",
			"Pick one: acrylic, watercolor, or Paint & Sip",
			"Book a session for this week if possible",
			"Go with an open mind - no skill required",
			"Enjoy the creative process",
		},
		AltID: alt("fun001"),
		FollowUp: []string{
			"What type of class did you take?",
			"Would you recommend it?",
		},
	},
	{
		ID:          "fun003",
		Title:       "Try DJing",
		Short:       "Download a DJ app or book a lesson to learn the basics.",
		AreaTags:    []domain.Area{domain.AreaCreativity},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(120),
		Steps: []string{
			"Download a DJ app (djay is popular) or find a tutor",
			"Learn the basics of mixing and transitions",
			"Play with beatmatching two songs",
			"Try creating a simple mix",
			"Share your creation with a friend",
		},
		FollowUp: []string{
			"Did you like mixing music?",
			"Will you practice more?",
		},
	},
	{
		ID:          "fun004",
		Title:       "Classical or Jazz Concert",
		Short:       "Book a concert with classical, jazz, or instrumental music and bring a friend.",
		AreaTags:    []domain.Area{domain.AreaCreativity, domain.AreaSocial},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Search for upcoming concerts in your area",
			"Pick one: classical, jazz, or instrumental",
			"Invite a friend to join you",
			"Book your tickets",
			"Enjoy the live music experience",
		},
		FollowUp: []string{
			"What concert did you attend?",
			"Would you go again?",
		},
	},
	{
		ID:          "fun005",
		Title:       "Learn an Instrument",
		Short:       "Book a lesson to learn piano, guitar, or drums.",
		AreaTags:    []domain.Area{domain.AreaCreativity},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Choose an instrument that interests you",
			"Search for tutors or music schools",
			"Book an introductory lesson",
			"Go with no expectations - just curiosity",
			"Practice what you learned for 15 min after",
		},
		FollowUp: []string{
			"Which instrument did you try?",
			"Will you continue learning?",
		},
	},
	{
		ID:          "fun006",
		Title:       "Sewing or Upcycling",
		Short:       "Take a sewing class or upcycle clothes you no longer wear.",
		AreaTags:    []domain.Area{domain.AreaCreativity},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(60),
		Steps: []string{
			"Option A: Book a sewing class near you",
			"Option B: Go through your wardrobe",
			"Select clothes you do not wear anymore",
			"Get creative: use scissors, markers, patches",
			"Transform them into something new",
		},
		FollowUp: []string{
			"What did you create?",
			"Would you try this again?",
		},
	},
	{
		ID:          "fun007",
		Title:       "Acting or Improv",
		Short:       "Try an acting class, improv theatre, or storytelling workshop.",
		AreaTags:    []domain.Area{domain.AreaCreativity, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(120),
		Steps: []string{
			"Search for beginner-friendly classes",
			"Choose: acting, improv, or storytelling",
			"Book a session for the next two weeks",
			"Go ready to be silly and have fun",
			"Step outside your comfort zone",
		},
		FollowUp: []string{
			"What did you try?",
			"How did it feel to perform?",
		},
	},
	{
		ID:          "fun008",
		Title:       "Learn Poker",
		Short:       "Order a poker set, watch tutorials, and organize a poker night.",
		AreaTags:    []domain.Area{domain.AreaCreativity, domain.AreaSocial},
		Tone:        domain.TonePlayful,
		DurationMin: minutes(180),
		Steps: []string{
			"Order a poker set online",
			"Watch YouTube tutorials on the rules and strategy",
			"Practice the basics",
			"Find friends who play or want to learn",
			"Organize a poker night within 3 weeks",
		},
		FollowUp: []string{
			"When is your poker night?",
			"Who is coming?",
		},
	},
	// Money & finances
	{
		ID:          "mon001",
		Title:       "Money Mindset Check",
		Short:       "Reflect on your relationship with money.",
		AreaTags:    []domain.Area{domain.AreaMoney, domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Answer honestly: Do you love, like, or fear money?",
			"Consider: Do you see money as scarce or abundant?",
			"Reflect: Do you track your spending?",
			"Think: What beliefs about money did you grow up with?",
			"Write one empowering money belief to adopt",
		},
		FollowUp: []string{
			"What did you discover about your money mindset?",
			"What new belief will you adopt?",
		},
	},
	{
		ID:          "mon002",
		Title:       "Financial Snapshot",
		Short:       "Create a spreadsheet showing your current financial situation.",
		AreaTags:    []domain.Area{domain.AreaMoney, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Open a spreadsheet (Google Sheets or Excel)",
			"List all your savings accounts and balances",
			"List any debts you have",
			"Write down recurring income sources",
			"List your regular monthly expenses",
		},
		FollowUp: []string{
			"Did you complete your financial snapshot?",
			"Any surprises in your numbers?",
		},
	},
	{
		ID:          "mon003",
		Title:       "Start Saving or Pay Off Debt",
		Short:       "Set up automatic savings or make a debt payment today.",
		AreaTags:    []domain.Area{domain.AreaMoney},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"If you have debt: contact the lender about a payment plan",
			"If saving: open a separate savings account",
			"Set up an automatic transfer after each paycheck",
			"Start small - even a small amount builds the habit",
			"Do not connect this account to your debit card",
		},
		FollowUp: []string{
			"What action did you take?",
			"How much will you save or pay each month?",
		},
	},
	{
		ID:          "mon004",
		Title:       "Define Your Savings Goal",
		Short:       "Decide what you are saving for and how much you need.",
		AreaTags:    []domain.Area{domain.AreaMoney, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Write down what you want to save for",
			"Research how much it will cost",
			"Calculate how much you need to save per week/month",
			"Set a target date",
			"Write this goal somewhere visible",
		},
		FollowUp: []string{
			"What is your savings goal?",
			"When do you want to reach it?",
		},
	},
	{
		ID:          "mon005",
		Title:       "Subscription Audit",
		Short:       "Review all subscriptions and cancel the ones you do not use.",
		AreaTags:    []domain.Area{domain.AreaMoney, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Check your bank statement for recurring charges",
			"List all subscriptions: streaming, apps, memberships",
			"For each one, ask: Did I use this in the last month?",
			"Cancel at least one that you forgot existed",
			"Calculate your annual savings",
		},
		FollowUp: []string{
			"What subscriptions did you cancel?",
			"How much will you save?",
		},
	},
	{
		ID:          "mon006",
		Title:       "Money Belief Swap",
		Short:       "Replace a limiting belief about money with an empowering one.",
		AreaTags:    []domain.Area{domain.AreaMoney, domain.AreaSelfLove},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(30),
		Steps: []string{
			"Write down one limiting belief (e.g., \"I will never save enough\")",
			"Rewrite it as empowering: \"I have all the money I need\"",
			"Write this new belief on paper",
			"Put it on your mirror or somewhere visible",
			"Read it every morning",
		},
		FollowUp: []string{
			"What belief did you swap?",
			"Where did you put your new affirmation?",
		},
	},
	{
		ID:          "mon007",
		Title:       "Future Self Budget",
		Short:       "Design a budget for the life you want, then compare to your current one.",
		AreaTags:    []domain.Area{domain.AreaMoney, domain.AreaFocus},
		Tone:        domain.ToneSerious,
		DurationMin: minutes(60),
		Steps: []string{
			"Imagine your ideal life in 5 years",
			"List the expenses that life would have",
			"Create a budget for that future self",
			"Compare it to your current budget",
			"Identify the gaps and what needs to change",
		},
		FollowUp: []string{
			"What did you learn from this exercise?",
			"What is the biggest gap to close?",
		},
	},
}

func minutes(n int) *int { return &n }

func alt(id string) *string { return &id }
