package hunt

// Clue is one stage of the hunt. Answers holds the accepted aliases in
// priority order; the first one is revealed when a player runs out of hints.
type Clue struct {
	ID       int
	Prompt   string
	Answers  []string
	Hints    [3]string
	Location string
}

// PortlandClues returns the ordered five-stop Portland route. The slice is
// rebuilt on every call so callers can't mutate the catalog.
func PortlandClues() []Clue {
	return []Clue{
		{
			ID:     1,
			Prompt: "🌹 Start your adventure at Portland's most famous garden, where over 10,000 rose bushes bloom. This International Rose Test Garden has been testing roses since 1917. What's the name of this fragrant paradise?",
			Answers: []string{
				"International Rose Test Garden",
				"Rose Test Garden",
				"Rose Garden",
				"International Rose Garden",
				"Portland Rose Garden",
			},
			Hints: [3]string{
				"🌹 This garden is in Washington Park and offers stunning views of Mount Hood on clear days.",
				"🌹 It's located in the same park as the Japanese Garden and has 'International' in its name.",
				"🌹 The garden tests new rose varieties and has been doing so for over 100 years!",
			},
			Location: "Washington Park",
		},
		{
			ID:     2,
			Prompt: "📚 Next, visit the largest independent bookstore in the world! This colorful store takes up an entire city block and has a slogan about covering the city. Where are you going?",
			Answers: []string{
				"Powell's Books",
				"Powell's City of Books",
				"Powells",
				"Powell's",
				"City of Books",
			},
			Hints: [3]string{
				"📚 The store uses different colored rooms (Blue, Red, Green, etc.) to organize its sections.",
				"📚 It's located in the Pearl District and their slogan mentions 'covering' something.",
				"📚 The founder's last name is Powell, and they claim to cover the city like a good book!",
			},
			Location: "Pearl District",
		},
		{
			ID:     3,
			Prompt: "🍩 Time for a sweet treat! Head to the place where the donuts are as weird as the city's slogan. This iconic pink box shop has been serving unusual flavors since 2003. The owner's goal was to keep Portland weird. What's this donut shop called?",
			Answers: []string{
				"Voodoo Doughnut",
				"Voodoo Donuts",
				"Voodoo Doughnuts",
				"Voodoo",
				"VooDoo Doughnut",
			},
			Hints: [3]string{
				"🍩 They're famous for donuts with cereal on top and bacon-covered varieties.",
				"🍩 The shop has a pink neon sign and is often associated with 'magic' or 'spells'.",
				"🍩 Their most famous donut is covered in Fruit Loops cereal!",
			},
			Location: "Downtown Portland",
		},
		{
			ID:     4,
			Prompt: "🏛️ Now explore Portland's living room! This beautiful public square hosts farmers markets, festivals, and events. It's been the heart of downtown since 1984 and is named after a civic leader. What's this gathering place called?",
			Answers: []string{
				"Pioneer Courthouse Square",
				"Pioneer Square",
				"Courthouse Square",
				"Pioneer Courthouse",
				"Portland's Living Room",
			},
			Hints: [3]string{
				"🏛️ It's directly across from a historic federal courthouse built in the 1870s.",
				"🏛️ The square features red brick and often has a large Christmas tree during holidays.",
				"🏛️ It's nicknamed 'Portland's Living Room' and hosts the annual Festival of Lights!",
			},
			Location: "Downtown Portland",
		},
		{
			ID:     5,
			Prompt: "🌊 For your final destination, visit the area where two major rivers meet! This waterfront district offers great views, food carts, and Saturday Market. It's named after the direction you'd travel to reach the ocean. What's this riverside area called?",
			Answers: []string{
				"Tom McCall Waterfront Park",
				"Waterfront Park",
				"Tom McCall Park",
				"McCall Waterfront Park",
				"Waterfront District",
				"Saturday Market area",
			},
			Hints: [3]string{
				"🌊 This park stretches along the Willamette River and hosts the Saturday Market.",
				"🌊 It's named after a former Oregon governor who was known for environmental protection.",
				"🌊 The park offers great views of the Hawthorne and Morrison bridges!",
			},
			Location: "Waterfront",
		},
	}
}
