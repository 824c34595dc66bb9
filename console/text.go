package console

const TextInstructions = `Welcome to BattleShip!

Here are your instructions for BattleShip!

This game is simply a version of BattleShip that is to be played versus the computer.
The computer cannot fight back, therefore you are only attacking their ships.
There are only a few things you need to know:
First, each round you must choose a location to attack by entering in the coordinates in the
traditional format of a letter followed by a number (Example: A1).
Any other input is invalid and will not be recognized by the computer.
That being said, if you cannot win (or give up), you may type "EH" (stands for Enable Hacks)
into your next turn input. This will enable hacks, which will show you
exactly where the computer has placed its ships.
If you wish to disable them simply type in the command again.

Have fun!
`

const (
	TextPrompt              = "What coordinate should be attacked?"
	TextHit                 = "\nTarget Hit. Great choice.\n"
	TextMiss                = "\nTarget Miss... We'll get 'em next time.\n"
	TextSunkFormat          = "\nYou just sunk the %s!\n"
	TextStandingFormat      = "The %s is still standing. "
	TextAlreadyAttacked     = "\nYour chosen location has already been attacked!\n"
	TextOutOfBounds         = "\nThat location is not on the board. Rows run A-J and columns 1-10.\n"
	TextMalformedCoordinate = "\nInvalid coordinate. Enter a letter followed by a number (Example: A1).\n"
	TextHacksEnabled        = "\nHacks enabled.\n"
	TextHacksDisabled       = "\nHacks disabled.\n"
	TextWin                 = "You win!"
	TextReplayPrompt        = "Would you like to play another game? Enter 1 to play again, otherwise press 0 exit."
	TextGoodbye             = "Thanks for playing!"
)
